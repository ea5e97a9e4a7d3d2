package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when CATALOG_CONFIG is not set
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Catalog struct {
		Capacity int    `yaml:"capacity" env:"CATALOG_CAPACITY"`
		SeedFile string `yaml:"seed_file" env:"CATALOG_SEED_FILE"`
	} `yaml:"catalog"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadDotEnv copies variables from ./.env into the environment.
// Variables already set are left alone, and a missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// ResolvePath returns the config file to load: CATALOG_CONFIG from the
// environment or .env, else DefaultConfigPath.
func ResolvePath() (string, error) {
	if err := LoadDotEnv(); err != nil {
		return "", err
	}
	return GetEnv("CATALOG_CONFIG", DefaultConfigPath), nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Catalog.Capacity = 10
	config.Catalog.SeedFile = ""

	config.Logging.Level = "warn"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Catalog.Capacity <= 0 {
		return fmt.Errorf("catalog capacity must be greater than 0, got %d", config.Catalog.Capacity)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level %q", config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Logging.Format)
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
