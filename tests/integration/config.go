package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"user-service/app/config"
	"user-service/app/driver/postgres"
	"user-service/app/utils/logger"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "user_test_db"
	TestPostgresUser     = "user_test"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		// Server
		Port:     "9600",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		// Database
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		// Identity provider (never reached from these tests)
		Auth0Domain:       "tenant.example.auth0.com",
		Auth0ClientID:     "integration-client",
		Auth0ClientSecret: "integration-secret",
		Auth0Audience:     "https://tenant.example.auth0.com/api/v2/",
		Auth0Connection:   "Username-Password-Authentication",
		Auth0Realm:        "Username-Password-Authentication",
		Auth0Scope:        "openid profile email",

		// Token cache
		ServiceTokenTTL:    23 * time.Hour,
		TokenRefreshMargin: 300 * time.Second,
	}
}

// TestDatabaseConnection creates a database connection for integration tests
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// WaitForDatabase blocks until the test database accepts connections or
// the timeout elapses.
func WaitForDatabase(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		pool, err := TestDatabaseConnection()
		if err == nil {
			pingErr := pool.Ping(ctx)
			pool.Close()
			if pingErr == nil {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return fmt.Errorf("database not ready after 30s")
}

// CleanupTestData removes rows created by integration tests
func CleanupTestData(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "DELETE FROM user_roles WHERE user_id IN (SELECT id FROM users WHERE username LIKE 'it_%')"); err != nil {
		return fmt.Errorf("failed to clean user_roles: %w", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE username LIKE 'it_%'"); err != nil {
		return fmt.Errorf("failed to clean users: %w", err)
	}
	return nil
}
