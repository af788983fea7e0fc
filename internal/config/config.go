package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                   int    `envconfig:"PORT" default:"8787"`
	LogLevel               string `envconfig:"LOG_LEVEL" default:"info"`
	Version                string `envconfig:"VERSION" default:"dev"`
	StoreDriver            string `envconfig:"STORE_DRIVER" default:"file"`
	DataFile               string `envconfig:"DATA_FILE" default:"data/db.json"`
	DatabaseURL            string `envconfig:"DATABASE_URL" default:""`
	DocumentName           string `envconfig:"DOCUMENT_NAME" default:"panda"`
	SeedFile               string `envconfig:"SEED_FILE" default:""`
	IntegrityCheckInterval int    `envconfig:"INTEGRITY_CHECK_INTERVAL" default:"0"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IntegrityInterval is the sweep interval; zero disables the monitor.
func (c *Config) IntegrityInterval() time.Duration {
	return time.Duration(c.IntegrityCheckInterval) * time.Second
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverFile:
		if c.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required with STORE_DRIVER=%s", DriverFile)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required with STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %s, %s or %s)", c.StoreDriver, DriverFile, DriverPostgres, DriverMemory)
	}
	if c.IntegrityCheckInterval < 0 {
		return fmt.Errorf("INTEGRITY_CHECK_INTERVAL must not be negative")
	}
	return nil
}
