package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Auth modes select the bearer token variant at deployment time
const (
	AuthModeJWT     = "jwt"
	AuthModeSession = "session"
)

// Config holds all configuration for the back-office service.
// Constructed once at process start and passed explicitly into each
// component; components never read ambient environment state.
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string
	AppEnv   string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Auth
	AuthMode   string
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration

	// Bootstrap admin. An empty pair disables the static credential
	// strategy, leaving only store-backed admins.
	AdminIdentifier  string
	AdminSecret      string
	AdminDisplayName string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	config.AppEnv = getEnvOrDefault("APP_ENV", "development")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "backoffice-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "backoffice_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "backoffice_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Auth configuration
	config.AuthMode = getEnvOrDefault("AUTH_MODE", AuthModeSession)
	config.JWTSecret = os.Getenv("JWT_SECRET")
	config.JWTIssuer = getEnvOrDefault("JWT_ISSUER", "backoffice-service")

	tokenTTLStr := getEnvOrDefault("TOKEN_TTL", "24h")
	var err error
	config.TokenTTL, err = time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	// Bootstrap admin configuration
	config.AdminIdentifier = os.Getenv("ADMIN_IDENTIFIER")
	config.AdminSecret = os.Getenv("ADMIN_SECRET")
	config.AdminDisplayName = getEnvOrDefault("ADMIN_DISPLAY_NAME", "Administrator")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid. A missing signing
// secret in JWT mode is a startup-time fatal condition, not a
// per-request error.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	switch c.AuthMode {
	case AuthModeJWT:
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters in jwt mode")
		}
	case AuthModeSession:
		// No signing key needed; sessions are opaque random tokens
	default:
		return fmt.Errorf("invalid auth mode: %s (must be %q or %q)", c.AuthMode, AuthModeJWT, AuthModeSession)
	}

	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	// Both halves of the bootstrap pair must be set together
	if (c.AdminIdentifier == "") != (c.AdminSecret == "") {
		return fmt.Errorf("ADMIN_IDENTIFIER and ADMIN_SECRET must be set together")
	}

	return nil
}

// IsDevelopment returns true when store error details may be shown to
// callers
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.AppEnv) == "development"
}

// HasBootstrapAdmin returns true when the static credential strategy is
// configured
func (c *Config) HasBootstrapAdmin() bool {
	return c.AdminIdentifier != "" && c.AdminSecret != ""
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
