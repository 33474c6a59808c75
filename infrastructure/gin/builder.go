package gin

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
)

// ServerBuilder assembles a Server fluently.
type ServerBuilder struct {
	config       *Config
	logger       logger.Logger
	setupRoutes  func(*gin.Engine)
	healthChecks map[string]HealthChecker
}

// NewServerBuilder starts a builder for serviceName listening on port.
func NewServerBuilder(serviceName string, port int) *ServerBuilder {
	return &ServerBuilder{
		config:       NewConfig(serviceName, port),
		healthChecks: make(map[string]HealthChecker),
	}
}

// WithLogger sets the logger used by the server and its middleware.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.logger = log
	return b
}

// WithDebug toggles gin debug mode.
func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.config.Debug = debug
	return b
}

// WithVersion sets the version reported by GET /health.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.config.ServiceVersion = version
	return b
}

// WithCORSOrigins sets the origins allowed by the CORS middleware.
func (b *ServerBuilder) WithCORSOrigins(origins []string) *ServerBuilder {
	b.config.CORS.AllowedOrigins = origins
	return b
}

// WithTimeouts sets read, write and idle timeouts. Zero keeps the default.
func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	if read > 0 {
		b.config.ReadTimeout = read
	}
	if write > 0 {
		b.config.WriteTimeout = write
	}
	if idle > 0 {
		b.config.IdleTimeout = idle
	}
	return b
}

// WithHealthCheck adds a named check reported by GET /health.
func (b *ServerBuilder) WithHealthCheck(name string, checker HealthChecker) *ServerBuilder {
	b.healthChecks[name] = checker
	return b
}

// WithRoutes sets the service route setup, called after health routes.
func (b *ServerBuilder) WithRoutes(setupRoutes func(*gin.Engine)) *ServerBuilder {
	b.setupRoutes = setupRoutes
	return b
}

// Build creates the server.
func (b *ServerBuilder) Build() *Server {
	if b.logger == nil {
		b.logger = logger.Must(logger.Config{Development: b.config.Debug})
	}

	checks := b.healthChecks
	setup := b.setupRoutes
	wrapped := func(router *gin.Engine) {
		RegisterHealthRoutes(router, HealthOptions{
			ServiceName:    b.config.ServiceName,
			ServiceVersion: b.config.ServiceVersion,
			Checks:         checks,
		})
		if setup != nil {
			setup(router)
		}
	}

	return NewServer(b.config, b.logger, wrapped)
}
