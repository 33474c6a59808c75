package gin

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/monitoring"
)

// HealthStatus is the status of the service or of one check.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  HealthStatus           `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// HealthChecker runs one check.
type HealthChecker func() CheckResult

// HealthOptions configures RegisterHealthRoutes.
type HealthOptions struct {
	ServiceName    string
	ServiceVersion string
	Checks         map[string]HealthChecker
}

var (
	startOnce sync.Once
	startTime time.Time
)

// RegisterHealthRoutes adds GET/HEAD /health and GET /health/memory.
// Only an unhealthy check turns the response into a 503; degraded checks
// are reported with 200 so load balancers keep routing.
func RegisterHealthRoutes(router *gin.Engine, opts HealthOptions) {
	startOnce.Do(func() { startTime = time.Now() })

	router.GET("/health", healthHandler(opts))
	router.HEAD("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health/memory", func(c *gin.Context) {
		monitoring.MemoryHealthHandler(c.Writer, c.Request)
	})
}

func healthHandler(opts HealthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status:  HealthStatusHealthy,
			Service: opts.ServiceName,
			Version: opts.ServiceVersion,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		}

		if len(opts.Checks) > 0 {
			response.Checks = make(map[string]CheckResult, len(opts.Checks))
			for name, check := range opts.Checks {
				result := check()
				response.Checks[name] = result

				switch {
				case result.Status == HealthStatusUnhealthy:
					response.Status = HealthStatusUnhealthy
				case result.Status == HealthStatusDegraded && response.Status == HealthStatusHealthy:
					response.Status = HealthStatusDegraded
				}
			}
		}

		statusCode := http.StatusOK
		if response.Status == HealthStatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, response)
	}
}

// ConfiguredChecker reports degraded when a required setting is missing.
// The dashboard keeps serving in that case, minus the feature.
func ConfiguredChecker(configured bool, what string) HealthChecker {
	return func() CheckResult {
		if !configured {
			return CheckResult{Status: HealthStatusDegraded, Message: what + " not configured"}
		}
		return CheckResult{Status: HealthStatusHealthy, Message: what + " configured"}
	}
}
