package main

import (
	"fmt"
	"os"

	infraconfig "github.com/jonesrussell/mars-explorer/infrastructure/config"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/infrastructure/profiling"
	"github.com/jonesrussell/mars-explorer/internal/api"
	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/jonesrussell/mars-explorer/internal/chat"
	"github.com/jonesrussell/mars-explorer/internal/config"
	"github.com/jonesrussell/mars-explorer/internal/handler"
	"github.com/jonesrussell/mars-explorer/internal/page"
	"github.com/jonesrussell/mars-explorer/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	// Start profilers (if enabled)
	profiling.StartPprofServer(cfg.Profiling, log)
	profiler, err := profiling.StartPyroscope(cfg.Profiling, cfg.Service.Name, cfg.Service.Version, log)
	if err != nil {
		log.Warn("Continuous profiling disabled", logger.Error(err))
	}
	defer func() { _ = profiler.Stop() }()

	return runServer(cfg, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := infraconfig.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger) int {
	metrics := telemetry.NewMetrics()

	apodClient := apod.NewClient(cfg.APODConfig(), apod.WithRecorder(metrics))
	if !apodClient.Configured() {
		log.Warn("NASA_API_KEY not set; the picture of the day will be hidden")
	}

	chatClient := chat.NewClient(cfg.ChatClientConfig())
	if !chatClient.Configured() {
		log.Info("ANTHROPIC_API_KEY not set; the chat page is offline")
	}

	router := page.NewRouter(
		page.NewHomePage(apodClient, nil, cfg.Service.HeroImage),
		page.NewRegistry(map[page.ID]page.Page{
			page.Chat:  page.NewChatPage(chatClient),
			page.Facts: page.NewFactsPage(),
			page.NASA:  page.NewNASAPage(apodClient, nil),
			page.Quiz:  page.NewQuizPage(nil),
		}),
		metrics,
	)

	server := api.NewServer(api.Deps{
		Pages:          handler.NewPageHandler(router, log),
		APOD:           handler.NewAPODHandler(apodClient, nil),
		Metrics:        metrics,
		NASAConfigured: apodClient.Configured(),
		ChatConfigured: chatClient.Configured(),
	}, cfg, log)

	log.Info("Mars Explorer starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("version", cfg.Service.Version),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Mars Explorer exited cleanly")
	return 0
}
