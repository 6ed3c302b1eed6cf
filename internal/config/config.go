package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// HTTP server
	Port      int    `envconfig:"PORT" default:"5000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web"`

	// Persistence
	DataDir string `envconfig:"DATA_DIR" default:"."`

	// ESPN API
	ESPNSiteAPIBase string        `envconfig:"ESPN_SITE_API_BASE" default:"https://site.api.espn.com"`
	ESPNCoreAPIBase string        `envconfig:"ESPN_CORE_API_BASE" default:"https://sports.core.api.espn.com"`
	ESPNTimeout     time.Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
}

// Load loads configuration from environment variables, reading a .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %d", c.Port)
	}
	if c.ESPNTimeout <= 0 {
		return fmt.Errorf("ESPN_TIMEOUT must be positive")
	}
	return nil
}

// EntriesFile returns the path of the flat file holding entries.
func (c *Config) EntriesFile() string {
	return filepath.Join(c.DataDir, "entries.json")
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or exits on error. Use in main() where we
// want to fail fast.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
