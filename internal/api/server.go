// Package api wires the dashboard's handlers into an HTTP server.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/mars-explorer/infrastructure/gin"
	infralogger "github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/config"
	"github.com/jonesrussell/mars-explorer/internal/handler"
)

const (
	defaultReadTimeout = 10 * time.Second
	// The home page may wait on NASA and the chat page on the model.
	defaultWriteTimeout = 45 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Deps are the handlers and collaborators the routes need.
type Deps struct {
	Pages   *handler.PageHandler
	APOD    *handler.APODHandler
	Metrics MetricsHandler

	// NASAConfigured and ChatConfigured feed the /health checks.
	NASAConfigured bool
	ChatConfigured bool
}

// NewServer creates a new HTTP server.
func NewServer(deps Deps, cfg *config.Config, log infralogger.Logger) *infragin.Server {
	return infragin.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithCORSOrigins(cfg.Service.CORSOrigins).
		WithTimeouts(defaultReadTimeout, defaultWriteTimeout, defaultIdleTimeout).
		WithHealthCheck("nasa_api", infragin.ConfiguredChecker(deps.NASAConfigured, "NASA_API_KEY")).
		WithHealthCheck("chat", infragin.ConfiguredChecker(deps.ChatConfigured, "ANTHROPIC_API_KEY")).
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, deps, cfg.Service)
		}).
		Build()
}
