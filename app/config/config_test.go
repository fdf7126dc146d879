package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("AUTH0_DOMAIN", "example.eu.auth0.com")
	t.Setenv("AUTH0_CLIENT_ID", "client-id")
	t.Setenv("AUTH0_CLIENT_SECRET", "client-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9600", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "secret", cfg.DatabasePassword)
	assert.Equal(t, "example.eu.auth0.com", cfg.Auth0Domain)
	assert.Equal(t, "https://example.eu.auth0.com/api/v2/", cfg.Auth0Audience)
	assert.Equal(t, "Username-Password-Authentication", cfg.Auth0Connection)
	assert.Equal(t, "Username-Password-Authentication", cfg.Auth0Realm)
	assert.Equal(t, "openid profile email", cfg.Auth0Scope)
	assert.Equal(t, 23*time.Hour, cfg.ServiceTokenTTL)
	assert.Equal(t, 300*time.Second, cfg.TokenRefreshMargin)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{"missing DB_PASSWORD", "DB_PASSWORD", "DB_PASSWORD is required"},
		{"missing AUTH0_DOMAIN", "AUTH0_DOMAIN", "AUTH0_DOMAIN is required"},
		{"missing AUTH0_CLIENT_ID", "AUTH0_CLIENT_ID", "AUTH0_CLIENT_ID is required"},
		{"missing AUTH0_CLIENT_SECRET", "AUTH0_CLIENT_SECRET", "AUTH0_CLIENT_SECRET is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("AUTH0_AUDIENCE", "https://custom-audience.example.com/")
	t.Setenv("SERVICE_TOKEN_TTL", "12h")
	t.Setenv("TOKEN_REFRESH_MARGIN", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://custom-audience.example.com/", cfg.Auth0Audience)
	assert.Equal(t, 12*time.Hour, cfg.ServiceTokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.TokenRefreshMargin)
}

func TestLoad_InvalidDurations(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_TOKEN_TTL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SERVICE_TOKEN_TTL")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:               "9600",
			LogLevel:           "info",
			Auth0Domain:        "example.eu.auth0.com",
			ServiceTokenTTL:    23 * time.Hour,
			TokenRefreshMargin: 300 * time.Second,
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"invalid port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"domain with scheme", func(c *Config) { c.Auth0Domain = "https://example.eu.auth0.com" }, "bare host"},
		{"ttl too short", func(c *Config) { c.ServiceTokenTTL = time.Second }, "at least 1 minute"},
		{"negative margin", func(c *Config) { c.TokenRefreshMargin = -time.Second }, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_EndpointURLs(t *testing.T) {
	cfg := &Config{Auth0Domain: "example.eu.auth0.com"}

	assert.Equal(t, "https://example.eu.auth0.com/oauth/token", cfg.TokenURL())
	assert.Equal(t, "https://example.eu.auth0.com/oauth/revoke", cfg.RevokeURL())
	assert.Equal(t, "https://example.eu.auth0.com/api/v2/users", cfg.ManagementUsersURL())
}
