package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"user-service/app/config"
	"user-service/app/driver/auth0"
	"user-service/app/driver/postgres"
	"user-service/app/gateway"
	"user-service/app/port"
	"user-service/app/rest"
	"user-service/app/rest/handlers"
	"user-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	ProviderClient *auth0.Client

	// Gateways
	TokenCache      *gateway.TokenCache
	IdentityGateway port.IdentityGateway

	// Usecases
	UserUsecase port.UserUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize identity provider client
	container.ProviderClient, err = auth0.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider client: %w", err)
	}

	// Initialize repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)

	// Initialize gateways
	container.TokenCache = gateway.NewTokenCache(container.ProviderClient, cfg, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(container.ProviderClient, container.TokenCache, logger)

	// Initialize usecases
	container.UserUsecase = usecase.NewUserUsecase(userRepository, container.IdentityGateway, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		UserUsecase: c.UserUsecase,
		Checks: map[string]handlers.DependencyCheck{
			"database":          c.DB.HealthCheck,
			"identity_provider": c.ProviderClient.HealthCheck,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
