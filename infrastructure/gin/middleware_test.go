package gin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ginpkg "github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/mars-explorer/infrastructure/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *ginpkg.Engine {
	t.Helper()

	ginpkg.SetMode(ginpkg.TestMode)
	router := ginpkg.New()
	router.Use(infragin.RequestIDLoggerMiddleware(logger.NewNop()))
	router.GET("/test", func(c *ginpkg.Context) { c.String(http.StatusOK, "ok") })
	return router
}

func TestRequestIDLoggerMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	reqID := w.Header().Get(infragin.RequestIDHeader)
	assert.Len(t, reqID, 32)
	assert.NotContains(t, reqID, "-")
}

func TestRequestIDLoggerMiddleware_PreservesInboundID(t *testing.T) {
	t.Parallel()

	const inboundID = "trace-from-upstream-abc123"

	ginpkg.SetMode(ginpkg.TestMode)
	router := ginpkg.New()
	router.Use(infragin.RequestIDLoggerMiddleware(logger.NewNop()))

	var gotID string
	var gotLogger logger.Logger
	router.GET("/test", func(c *ginpkg.Context) {
		gotID = c.GetString(infragin.RequestIDKey)
		gotLogger = logger.FromContext(c.Request.Context())
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(infragin.RequestIDHeader, inboundID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, inboundID, w.Header().Get(infragin.RequestIDHeader))
	assert.Equal(t, inboundID, gotID)
	assert.NotNil(t, gotLogger)
}

func TestRequestIDLoggerMiddleware_RejectsOversizedID(t *testing.T) {
	t.Parallel()

	oversized := strings.Repeat("x", 200)
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(infragin.RequestIDHeader, oversized)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	got := w.Header().Get(infragin.RequestIDHeader)
	assert.NotEqual(t, oversized, got)
	assert.Len(t, got, 32)
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	ginpkg.SetMode(ginpkg.TestMode)
	router := ginpkg.New()
	router.Use(infragin.CORSMiddleware(infragin.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://mars.example"},
	}))
	router.GET("/test", func(c *ginpkg.Context) { c.String(http.StatusOK, "ok") })

	preflight := httptest.NewRequest(http.MethodOptions, "/test", http.NoBody)
	preflight.Header.Set("Origin", "https://mars.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://mars.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))

	other := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	other.Header.Set("Origin", "https://elsewhere.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	ginpkg.SetMode(ginpkg.TestMode)
	router := ginpkg.New()
	router.Use(infragin.RecoveryMiddleware(logger.NewNop()))
	router.GET("/boom", func(*ginpkg.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServerBuilder_HealthReportsDegradedChecks(t *testing.T) {
	t.Parallel()

	server := infragin.NewServerBuilder("mars-explorer", 8095).
		WithLogger(logger.NewNop()).
		WithVersion("1.2.3").
		WithHealthCheck("nasa_api_key", infragin.ConfiguredChecker(false, "NASA API key")).
		Build()

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var body infragin.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, infragin.HealthStatusDegraded, body.Status)
	assert.Equal(t, "mars-explorer", body.Service)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, infragin.HealthStatusDegraded, body.Checks["nasa_api_key"].Status)

	w = httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/memory", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
}
