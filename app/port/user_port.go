package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"user-service/app/domain"
)

// UserUsecase defines user registration and authentication business logic
type UserUsecase interface {
	RegisterUser(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// UserRepository defines user data access
type UserRepository interface {
	// CreateUser inserts the user and its resolvable role memberships in
	// one transaction and returns the row as stored.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetUserByUsername returns nil (not an error) when no user matches.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// EmailOrUsernameExists is the advisory pre-write uniqueness guard;
	// the unique constraints remain the authority under concurrency.
	EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error)
}
