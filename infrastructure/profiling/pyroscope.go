package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
)

// PyroscopeProfiler wraps a running Pyroscope profiler. A nil value is valid
// and means profiling is disabled.
type PyroscopeProfiler struct {
	profiler *pyroscope.Profiler
}

// StartPyroscope starts continuous profiling when enabled, tagging samples
// with the service version and host. It returns (nil, nil) when disabled.
func StartPyroscope(cfg Config, serviceName, version string, log logger.Logger) (*PyroscopeProfiler, error) {
	if !cfg.PyroscopeEnabled {
		return nil, nil //nolint:nilnil // disabled is not an error
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   cfg.PyroscopeServerURL,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Tags: map[string]string{
			"environment": cfg.PyroscopeEnvironment,
			"version":     version,
			"hostname":    hostname,
			"go_version":  runtime.Version(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope profiler: %w", err)
	}

	log.Info("Pyroscope continuous profiling started",
		logger.String("application", serviceName),
		logger.String("server", cfg.PyroscopeServerURL),
	)
	return &PyroscopeProfiler{profiler: profiler}, nil
}

// Stop flushes and stops the profiler. Safe on a nil receiver.
func (p *PyroscopeProfiler) Stop() error {
	if p == nil || p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}
