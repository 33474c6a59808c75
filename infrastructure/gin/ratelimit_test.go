package gin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	ginpkg "github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/mars-explorer/infrastructure/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, rps, burst int) *ginpkg.Engine {
	t.Helper()

	ginpkg.SetMode(ginpkg.TestMode)
	router := ginpkg.New()
	router.Use(infragin.RateLimitMiddleware(rps, burst))
	router.GET("/limited", func(c *ginpkg.Context) { c.String(http.StatusOK, "ok") })
	return router
}

func TestRateLimitMiddleware_BlocksOnceBurstSpent(t *testing.T) {
	t.Parallel()

	const burst = 3
	router := newLimitedRouter(t, 1, burst)

	for i := range burst {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", http.NoBody))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimitMiddleware_BurstDefaultsToRPS(t *testing.T) {
	t.Parallel()

	router := newLimitedRouter(t, 2, 0)

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", http.NoBody))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
