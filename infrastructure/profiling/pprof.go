// Package profiling starts the optional pprof and Pyroscope profilers.
// Both are off unless explicitly enabled in configuration.
package profiling

import (
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
)

// Config controls both profilers.
type Config struct {
	PprofEnabled bool   `env:"ENABLE_PROFILING" yaml:"pprof_enabled"`
	PprofPort    string `env:"PPROF_PORT"       yaml:"pprof_port"`

	PyroscopeEnabled     bool   `env:"ENABLE_CONTINUOUS_PROFILING" yaml:"pyroscope_enabled"`
	PyroscopeServerURL   string `env:"PYROSCOPE_SERVER_URL"        yaml:"pyroscope_server_url"`
	PyroscopeEnvironment string `env:"PYROSCOPE_ENVIRONMENT"       yaml:"pyroscope_environment"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.PprofPort == "" {
		c.PprofPort = "6060"
	}
	if c.PyroscopeServerURL == "" {
		c.PyroscopeServerURL = "http://pyroscope:4040"
	}
	if c.PyroscopeEnvironment == "" {
		c.PyroscopeEnvironment = "development"
	}
}

// StartPprofServer serves /debug/pprof on localhost:<PprofPort> in the
// background when enabled. It never binds a public interface.
func StartPprofServer(cfg Config, log logger.Logger) {
	if !cfg.PprofEnabled {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:              "localhost:" + cfg.PprofPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Starting pprof server", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("pprof server stopped", logger.Error(err))
		}
	}()
}
