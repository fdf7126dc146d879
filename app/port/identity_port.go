package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"user-service/app/domain"
)

// IdentityGateway is the seam between local identity and the remote
// provider. It holds no long-lived state; every call is independently
// retryable by the caller.
type IdentityGateway interface {
	RegisterPrincipal(ctx context.Context, req *domain.RegisterUserRequest) error
	ExchangeCredentials(ctx context.Context, username, password string) (*domain.TokenResponse, error)
	RevokeSession(ctx context.Context, refreshToken string) error
}

// TokenFetcher caches short-lived provider credentials and refreshes
// them when they are inside the safety margin.
type TokenFetcher interface {
	GetServiceToken(ctx context.Context) (string, error)
	GetPrincipalToken(ctx context.Context, username, password string) (*domain.TokenResponse, error)
}

// ProviderClient is the low-level identity provider API surface
// implemented by the HTTP driver.
type ProviderClient interface {
	ClientCredentialsToken(ctx context.Context) (*domain.ServiceToken, error)
	PasswordToken(ctx context.Context, username, password string) (*domain.TokenResponse, error)
	CreateAccount(ctx context.Context, accessToken, email, password string) error
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
