package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/tomashops/bingobest/pkg/entities"
)

// Storage type names accepted by STORAGE_TYPE
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	StorageType string
	DataDir     string

	// Economy defaults
	StartingBalance entities.Cents

	// Session archive (Elasticsearch)
	ArchiveEnabled  bool
	ArchiveURL      string
	ArchiveUsername string
	ArchivePassword string
	ArchiveInterval time.Duration

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	startingBalance, err := strconv.ParseInt(getEnvWithDefault("STARTING_BALANCE_CENTS", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_BALANCE_CENTS: %w", err)
	}

	archiveInterval, err := time.ParseDuration(getEnvWithDefault("ARCHIVE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARCHIVE_INTERVAL: %w", err)
	}

	cfg := &Config{
		StorageType:     getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		DataDir:         getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		StartingBalance: entities.Cents(startingBalance),
		ArchiveEnabled:  getEnvWithDefault("ARCHIVE_ENABLED", "false") == "true",
		ArchiveURL:      getEnvWithDefault("ES_URL", "http://localhost:9200"),
		ArchiveUsername: os.Getenv("ES_USERNAME"),
		ArchivePassword: os.Getenv("ES_PASSWORD"),
		ArchiveInterval: archiveInterval,
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.StorageType != StorageMemory && c.StorageType != StorageSQLite {
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageMemory, StorageSQLite, c.StorageType)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("STARTING_BALANCE_CENTS cannot be negative")
	}
	if c.ArchiveEnabled && c.ArchiveURL == "" {
		return fmt.Errorf("ES_URL is required when ARCHIVE_ENABLED is true")
	}
	return nil
}

// DatabasePath returns the SQLite database location
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "bingobest.db")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
