package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ndewijer/datetime-formatter/internal/datetime"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	DateTime DateTimeConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// DateTimeConfig holds the formatter defaults shared by every endpoint.
type DateTimeConfig struct {
	DefaultFormat string
	// LocalTimezone is the IANA id used as "local" time. Empty means the
	// host zone.
	LocalTimezone string
	Location      *time.Location
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		DateTime: DateTimeConfig{
			DefaultFormat: getEnv("DATETIME_DEFAULT_FORMAT", datetime.DefaultFormat),
			LocalTimezone: getEnv("DATETIME_LOCAL_TIMEZONE", ""),
			Location:      time.Local,
		},
	}

	if config.DateTime.LocalTimezone != "" {
		loc, err := datetime.LoadLocation(config.DateTime.LocalTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid DATETIME_LOCAL_TIMEZONE: %w", err)
		}
		config.DateTime.Location = loc
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// NewFormatter builds the formatter described by the configuration.
func (c DateTimeConfig) NewFormatter() *datetime.Formatter {
	return datetime.New(
		datetime.WithLocation(c.Location),
		datetime.WithDefaultFormat(c.DefaultFormat),
	)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma-separated environment variable, skipping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
