package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the user service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseHost     string `env:"DB_HOST" default:"user-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"user_db"`
	DatabaseUser     string `env:"DB_USER" default:"user_service"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Identity provider (Auth0-style OAuth2/OIDC)
	Auth0Domain       string `env:"AUTH0_DOMAIN" required:"true"`
	Auth0ClientID     string `env:"AUTH0_CLIENT_ID" required:"true"`
	Auth0ClientSecret string `env:"AUTH0_CLIENT_SECRET" required:"true"`
	Auth0Audience     string `env:"AUTH0_AUDIENCE"`
	Auth0Connection   string `env:"AUTH0_CONNECTION" default:"Username-Password-Authentication"`
	Auth0Realm        string `env:"AUTH0_REALM" default:"Username-Password-Authentication"`
	Auth0Scope        string `env:"AUTH0_SCOPE" default:"openid profile email"`

	// Token cache tuning. The service token TTL sits below the provider's
	// typical 24h expiry to absorb clock skew; the refresh margin keeps a
	// token from being served when it could expire mid-use.
	ServiceTokenTTL    time.Duration `env:"SERVICE_TOKEN_TTL" default:"23h"`
	TokenRefreshMargin time.Duration `env:"TOKEN_REFRESH_MARGIN" default:"300s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "user-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "user_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "user_service")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Identity provider configuration
	config.Auth0Domain = os.Getenv("AUTH0_DOMAIN")
	if config.Auth0Domain == "" {
		return nil, fmt.Errorf("AUTH0_DOMAIN is required")
	}

	config.Auth0ClientID = os.Getenv("AUTH0_CLIENT_ID")
	if config.Auth0ClientID == "" {
		return nil, fmt.Errorf("AUTH0_CLIENT_ID is required")
	}

	config.Auth0ClientSecret = os.Getenv("AUTH0_CLIENT_SECRET")
	if config.Auth0ClientSecret == "" {
		return nil, fmt.Errorf("AUTH0_CLIENT_SECRET is required")
	}

	// The management API audience follows the provider's convention unless
	// overridden explicitly
	config.Auth0Audience = getEnvOrDefault("AUTH0_AUDIENCE",
		fmt.Sprintf("https://%s/api/v2/", config.Auth0Domain))
	config.Auth0Connection = getEnvOrDefault("AUTH0_CONNECTION", "Username-Password-Authentication")
	config.Auth0Realm = getEnvOrDefault("AUTH0_REALM", "Username-Password-Authentication")
	config.Auth0Scope = getEnvOrDefault("AUTH0_SCOPE", "openid profile email")

	// Token cache configuration
	var err error
	serviceTokenTTLStr := getEnvOrDefault("SERVICE_TOKEN_TTL", "23h")
	config.ServiceTokenTTL, err = time.ParseDuration(serviceTokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_TOKEN_TTL: %w", err)
	}

	refreshMarginStr := getEnvOrDefault("TOKEN_REFRESH_MARGIN", "300s")
	config.TokenRefreshMargin, err = time.ParseDuration(refreshMarginStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_REFRESH_MARGIN: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// The domain is used to build token and management URLs, so a scheme
	// prefix here would produce malformed endpoints
	if strings.Contains(c.Auth0Domain, "://") {
		return fmt.Errorf("AUTH0_DOMAIN must be a bare host, got: %s", c.Auth0Domain)
	}

	// Validate cache tuning
	if c.ServiceTokenTTL < time.Minute {
		return fmt.Errorf("service token TTL must be at least 1 minute, got: %v", c.ServiceTokenTTL)
	}

	if c.TokenRefreshMargin < 0 {
		return fmt.Errorf("token refresh margin must not be negative, got: %v", c.TokenRefreshMargin)
	}

	return nil
}

// TokenURL returns the provider's token endpoint
func (c *Config) TokenURL() string {
	return fmt.Sprintf("https://%s/oauth/token", c.Auth0Domain)
}

// RevokeURL returns the provider's token revocation endpoint
func (c *Config) RevokeURL() string {
	return fmt.Sprintf("https://%s/oauth/revoke", c.Auth0Domain)
}

// ManagementUsersURL returns the provider's management API users endpoint
func (c *Config) ManagementUsersURL() string {
	return fmt.Sprintf("https://%s/api/v2/users", c.Auth0Domain)
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
