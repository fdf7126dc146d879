package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"user-service/app/domain"
	"user-service/app/port"
)

// IdentityGateway implements port.IdentityGateway. It acts as an
// anti-corruption layer between the domain and the remote identity
// provider, pairing the raw provider client with the token cache.
type IdentityGateway struct {
	client port.ProviderClient
	tokens port.TokenFetcher
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.ProviderClient, tokens port.TokenFetcher, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		tokens: tokens,
		logger: logger.With("component", "identity_gateway"),
	}
}

// RegisterPrincipal creates the remote account mirroring a locally
// registered user. The request carries whatever credential the caller
// decided the provider should hold; this layer does not inspect it.
func (g *IdentityGateway) RegisterPrincipal(ctx context.Context, req *domain.RegisterUserRequest) error {
	g.logger.Info("registering principal with provider", "email", req.Email)

	serviceToken, err := g.tokens.GetServiceToken(ctx)
	if err != nil {
		g.logger.Error("failed to obtain service token", "error", err)
		return fmt.Errorf("failed to obtain service token: %w", err)
	}

	if err := g.client.CreateAccount(ctx, serviceToken, req.Email, req.Password); err != nil {
		g.logger.Error("failed to create remote account", "email", req.Email, "error", err)
		return fmt.Errorf("failed to create remote account: %w", err)
	}

	g.logger.Info("principal registered successfully", "email", req.Email)
	return nil
}

// ExchangeCredentials trades a username and credential for a token set,
// served from the cache when a fresh entry exists.
func (g *IdentityGateway) ExchangeCredentials(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	g.logger.Info("exchanging credentials", "username", username)

	token, err := g.tokens.GetPrincipalToken(ctx, username, password)
	if err != nil {
		g.logger.Warn("credential exchange failed", "username", username, "error", err)
		return nil, err
	}

	g.logger.Info("credentials exchanged successfully", "username", username)
	return token, nil
}

// RevokeSession invalidates a refresh token at the provider
func (g *IdentityGateway) RevokeSession(ctx context.Context, refreshToken string) error {
	g.logger.Info("revoking session")

	if err := g.client.RevokeRefreshToken(ctx, refreshToken); err != nil {
		g.logger.Error("failed to revoke session", "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	g.logger.Info("session revoked successfully")
	return nil
}
