package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// DefaultConfigPath is the directory searched for config.yaml.
const DefaultConfigPath = "./configs"

// Config represents the main structure mapping the entire application configuration.
// This struct uses mapstructure tags to map YAML keys to Go struct fields.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Listing  ListingConfig  `mapstructure:"listing"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port"`
	Mode                   string   `mapstructure:"mode"` // gin mode: debug, release or test
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds"`
}

// DatabaseConfig selects the metadata store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or memory
	Name   string `mapstructure:"name"`   // SQLite database file name
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"` // bytes
}

// ListingConfig holds pagination settings.
type ListingConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads the configuration from DefaultConfigPath, the environment and defaults.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigPath)
}

// LoadConfigFrom loads config.yaml from dir if present. Environment variables
// override file values, with dots replaced by underscores
// (e.g. "server.port" becomes "SERVER_PORT").
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Defaults apply when no config file is found or a key is missing.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.name", "file_processor.db")
	v.SetDefault("upload.max_file_size", 5*1024*1024)
	v.SetDefault("listing.default_page_size", 5)
	v.SetDefault("listing.max_page_size", 100)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("config file not found, using default values", "dir", dir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode %q: want debug, release or test", c.Server.Mode)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload.max_file_size must be positive, got %d", c.Upload.MaxFileSize)
	}
	if c.Listing.DefaultPageSize < 1 {
		return fmt.Errorf("listing.default_page_size must be positive, got %d", c.Listing.DefaultPageSize)
	}
	if c.Listing.MaxPageSize < c.Listing.DefaultPageSize {
		return fmt.Errorf("listing.max_page_size (%d) is smaller than listing.default_page_size (%d)",
			c.Listing.MaxPageSize, c.Listing.DefaultPageSize)
	}
	return nil
}
