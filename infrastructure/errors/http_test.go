package errors_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	infraerrors "github.com/jonesrussell/mars-explorer/infrastructure/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		body    string
		wantNil bool
		wantMsg string
	}{
		{name: "success", code: http.StatusOK, body: `{}`, wantNil: true},
		{
			name:    "nested api.data.gov error",
			code:    http.StatusForbidden,
			body:    `{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`,
			wantMsg: "An invalid api_key was supplied.",
		},
		{
			name:    "apod msg field",
			code:    http.StatusBadRequest,
			body:    `{"code":400,"msg":"Date must be between Jun 16, 1995 and Oct 19, 2026.","service_version":"v1"}`,
			wantMsg: "Date must be between Jun 16, 1995 and Oct 19, 2026.",
		},
		{name: "plain text", code: http.StatusBadGateway, body: "upstream down", wantMsg: "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := infraerrors.ParseHTTPError(response(tt.code, tt.body))
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}

			var httpErr *infraerrors.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.code, httpErr.StatusCode)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestGetHTTPStatusCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := infraerrors.WrapWithContext(infraerrors.ParseHTTPError(response(http.StatusTooManyRequests, "slow down")), "fetch apod")

	code, ok := infraerrors.GetHTTPStatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, code)

	_, ok = infraerrors.GetHTTPStatusCode(fmt.Errorf("plain"))
	assert.False(t, ok)
}
