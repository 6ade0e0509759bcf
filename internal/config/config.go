package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Checker holds all configuration for the contest stat checker.
type Checker struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Batch verification
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS

	// Fix mode applied before verification: "", "suggest" or "max"
	Fix string `yaml:"fix"`

	// Report store
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultChecker returns Checker config with sensible defaults.
// The report store is disabled by default.
func DefaultChecker() Checker {
	return Checker{
		LogLevel: "info",
		Workers:  0,
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "sheencheck",
			Password: "sheencheck",
			DBName:   "sheencheck",
			SSLMode:  "disable",
		},
	}
}

// Validate checks values that yaml typing cannot.
func (c Checker) Validate() error {
	switch c.Fix {
	case "", FixSuggest, FixMax:
	default:
		return fmt.Errorf("unknown fix mode %q", c.Fix)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Fix modes.
const (
	FixSuggest = "suggest"
	FixMax     = "max"
)

// LoadChecker loads checker config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadChecker(path string) (Checker, error) {
	cfg := DefaultChecker()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
