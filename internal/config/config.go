package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds all configuration for the seeder
type Config struct {
	Store   StoreConfig
	Log     LogConfig
	Catalog CatalogConfig
	Metrics MetricsConfig
}

// StoreConfig selects and locates the document store.
// The connection URL carries credentials and only ever comes from the environment.
type StoreConfig struct {
	Driver         string        `env:"SKILLS_STORE_DRIVER" envDefault:"redis"`
	URL            string        `env:"SKILLS_STORE_URL"`
	Collection     string        `env:"SKILLS_COLLECTION" envDefault:"skills"`
	ConnectTimeout time.Duration `env:"SKILLS_CONNECT_TIMEOUT" envDefault:"5s"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// CatalogConfig points at an optional catalog file replacing the built-in one
type CatalogConfig struct {
	File string `env:"SKILLS_CATALOG_FILE"`
}

// MetricsConfig points at an optional node exporter textfile
type MetricsConfig struct {
	Textfile string `env:"METRICS_TEXTFILE"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// REDIS_URL is what the other tools in this repo read
	if cfg.Store.URL == "" {
		cfg.Store.URL = os.Getenv("REDIS_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverRedis:
		if c.Store.URL == "" {
			return fmt.Errorf("SKILLS_STORE_URL (or REDIS_URL) is required for the %s driver", DriverRedis)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown SKILLS_STORE_DRIVER %q (want %s or %s)", c.Store.Driver, DriverRedis, DriverMemory)
	}

	if c.Store.Collection == "" {
		return fmt.Errorf("SKILLS_COLLECTION cannot be empty")
	}
	if c.Store.ConnectTimeout <= 0 {
		return fmt.Errorf("SKILLS_CONNECT_TIMEOUT must be positive")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q (want text or json)", c.Log.Format)
	}

	return nil
}
