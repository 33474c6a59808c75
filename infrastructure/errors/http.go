// Package errors holds error types shared by the HTTP clients in this repo.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of an upstream error body is kept.
const maxErrorBody = 4 << 10

// HTTPError is a non-2xx response from an upstream API.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%s): %s", e.Status, e.Message)
	}
	return "HTTP error: " + e.Status
}

// ParseHTTPError returns nil for 2xx responses and an *HTTPError otherwise.
// NASA's API reports failures as {"error": {"code", "message"}} or as
// {"code", "msg"}; both shapes are understood, anything else falls back to
// the raw body.
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	httpErr := &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		httpErr.Message = fmt.Sprintf("failed to read error response body: %v", err)
		return httpErr
	}
	httpErr.Body = string(body)
	httpErr.Message = errorMessage(body)

	return httpErr
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Msg     string          `json:"msg"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return string(body)
	}

	if len(payload.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
		var flat string
		if json.Unmarshal(payload.Error, &flat) == nil && flat != "" {
			return flat
		}
	}
	if payload.Msg != "" {
		return payload.Msg
	}
	if payload.Message != "" {
		return payload.Message
	}
	return string(body)
}

// GetHTTPStatusCode extracts the status code from an *HTTPError anywhere in
// err's chain.
func GetHTTPStatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
