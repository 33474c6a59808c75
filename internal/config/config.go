// Package config holds the Mars Explorer service configuration.
package config

import (
	"time"

	infraconfig "github.com/jonesrussell/mars-explorer/infrastructure/config"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/infrastructure/profiling"
	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/jonesrussell/mars-explorer/internal/chat"
)

// Default configuration values.
const (
	defaultServiceName  = "mars-explorer"
	defaultServicePort  = 8501
	defaultVersion      = "0.1.0"
	defaultStaticDir    = "static"
	defaultHeroImage    = "/static/mars.svg"
	defaultRateLimitRPS = 1
	defaultRateLimitBst = 5
	defaultLoggingLevel = "info"
	defaultLoggingFmt   = "json"
)

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig    `yaml:"service"`
	NASA      NASAConfig       `yaml:"nasa"`
	Chat      ChatConfig       `yaml:"chat"`
	Logging   LoggingConfig    `yaml:"logging"`
	Profiling profiling.Config `yaml:"profiling"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Port        int      `env:"MARS_EXPLORER_PORT" yaml:"port"`
	Debug       bool     `env:"APP_DEBUG"          yaml:"debug"`
	StaticDir   string   `env:"STATIC_DIR"         yaml:"static_dir"`
	HeroImage   string   `yaml:"hero_image"`
	CORSOrigins []string `env:"CORS_ORIGINS"       yaml:"cors_origins"`

	// RateLimitRPS and RateLimitBurst bound /api/v1 traffic, which spends
	// the shared NASA quota.
	RateLimitRPS   int `env:"API_RATE_LIMIT_RPS"   yaml:"rate_limit_rps"`
	RateLimitBurst int `env:"API_RATE_LIMIT_BURST" yaml:"rate_limit_burst"`
}

// NASAConfig configures the picture of the day client.
type NASAConfig struct {
	APIKey  string        `env:"NASA_API_KEY"      yaml:"api_key"`
	BaseURL string        `env:"NASA_API_BASE_URL" yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ChatConfig configures the chatbot backend. An empty key leaves the chat
// page offline.
type ChatConfig struct {
	APIKey    string        `env:"ANTHROPIC_API_KEY" yaml:"api_key"`
	Model     string        `env:"ANTHROPIC_MODEL"   yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setNASADefaults(&cfg.NASA)
	setChatDefaults(&cfg.Chat)
	setLoggingDefaults(&cfg.Logging)
	cfg.Profiling.SetDefaults()
}

func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
	if svc.StaticDir == "" {
		svc.StaticDir = defaultStaticDir
	}
	if svc.HeroImage == "" {
		svc.HeroImage = defaultHeroImage
	}
	if svc.RateLimitRPS == 0 {
		svc.RateLimitRPS = defaultRateLimitRPS
	}
	if svc.RateLimitBurst == 0 {
		svc.RateLimitBurst = defaultRateLimitBst
	}
}

func setNASADefaults(n *NASAConfig) {
	if n.BaseURL == "" {
		n.BaseURL = apod.DefaultBaseURL
	}
	if n.Timeout == 0 {
		n.Timeout = apod.DefaultTimeout
	}
}

func setChatDefaults(c *ChatConfig) {
	if c.Model == "" {
		c.Model = chat.DefaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = chat.DefaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = chat.DefaultTimeout
	}
}

func setLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		log.Level = defaultLoggingLevel
	}
	if log.Format == "" {
		log.Format = defaultLoggingFmt
	}
}

// Validate validates the configuration. Missing API keys are not errors:
// the affected features degrade instead.
func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if c.Service.RateLimitRPS < 0 {
		return &infraconfig.ValidationError{Field: "service.rate_limit_rps", Message: "must not be negative"}
	}
	if c.Service.RateLimitBurst < 0 {
		return &infraconfig.ValidationError{Field: "service.rate_limit_burst", Message: "must not be negative"}
	}
	if err := infraconfig.ValidateURL("nasa.base_url", c.NASA.BaseURL); err != nil {
		return err
	}
	if c.NASA.Timeout < 0 {
		return &infraconfig.ValidationError{Field: "nasa.timeout", Message: "must not be negative"}
	}
	if c.Chat.MaxTokens < 0 {
		return &infraconfig.ValidationError{Field: "chat.max_tokens", Message: "must not be negative"}
	}
	return infraconfig.ValidateLogLevel("logging.level", c.Logging.Level)
}

// LoggerConfig converts the logging section for logger.New.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		Format:      c.Logging.Format,
		Development: c.Service.Debug,
	}
}

// APODConfig converts the NASA section for apod.NewClient.
func (c *Config) APODConfig() apod.Config {
	return apod.Config{
		APIKey:  c.NASA.APIKey,
		BaseURL: c.NASA.BaseURL,
		Timeout: c.NASA.Timeout,
	}
}

// ChatClientConfig converts the chat section for chat.NewClient.
func (c *Config) ChatClientConfig() chat.Config {
	return chat.Config{
		APIKey:    c.Chat.APIKey,
		Model:     c.Chat.Model,
		MaxTokens: c.Chat.MaxTokens,
		Timeout:   c.Chat.Timeout,
	}
}
