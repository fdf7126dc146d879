package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"user-service/app/domain"
	"user-service/app/port"
	apperrors "user-service/app/utils/errors"
	"user-service/app/utils/hasher"
)

// UserUsecase implements user registration and authentication business
// logic on top of the repository and the identity gateway.
type UserUsecase struct {
	userRepo port.UserRepository
	identity port.IdentityGateway
	logger   *slog.Logger
}

// NewUserUsecase creates a new UserUsecase instance
func NewUserUsecase(userRepo port.UserRepository, identity port.IdentityGateway, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		identity: identity,
		logger:   logger.With("component", "user_usecase"),
	}
}

// RegisterUser validates the request, persists the user locally and
// mirrors the account at the identity provider. Checks run in a fixed
// order so the caller always sees the earliest failure: required
// fields, uniqueness, password strength, email format.
func (uc *UserUsecase) RegisterUser(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, error) {
	if err := req.ValidateRequired(); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.EmailOrUsernameExists(ctx, req.Email, req.Username)
	if err != nil {
		uc.logger.Error("uniqueness check failed", "username", req.Username, "error", err)
		return nil, apperrors.NewDatabaseError("check existing users", err)
	}
	if exists {
		return nil, domain.ErrAlreadyTaken
	}

	if !domain.IsPasswordStrong(req.Password) {
		return nil, domain.ErrWeakPassword
	}

	if !domain.IsValidEmail(req.Email) {
		return nil, domain.ErrInvalidEmail
	}

	passwordHash, err := hasher.HashPassword(req.Password)
	if err != nil {
		uc.logger.Error("password hashing failed", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(req, passwordHash)

	created, err := uc.userRepo.CreateUser(ctx, user)
	if err != nil {
		uc.logger.Error("user persistence failed", "username", req.Username, "error", err)
		return nil, err
	}

	// The provider account is keyed by email and carries the stored hash
	// as its credential, so the plaintext password never leaves this
	// process.
	providerReq := &domain.RegisterUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: passwordHash,
	}
	if err := uc.identity.RegisterPrincipal(ctx, providerReq); err != nil {
		uc.logger.Error("provider registration failed after local insert",
			"username", req.Username, "error", err)
		return nil, apperrors.NewProviderError("register principal", err)
	}

	uc.logger.Info("user registered", "user_id", created.ID, "username", created.Username)
	return created, nil
}

// Login verifies the credentials against the local store and exchanges
// them with the identity provider for a token set. Every authentication
// failure maps to the same error so callers cannot probe for usernames.
func (uc *UserUsecase) Login(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("user lookup failed", "username", username, "error", err)
		return nil, apperrors.NewDatabaseError("look up user", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !hasher.VerifyPassword(password, user.PasswordHash) {
		uc.logger.Warn("password verification failed", "username", username)
		return nil, domain.ErrInvalidCredentials
	}

	// The provider holds the hash as the account credential, keyed by
	// email, matching what registration stored there.
	token, err := uc.identity.ExchangeCredentials(ctx, user.Email, user.PasswordHash)
	if err != nil {
		uc.logger.Error("credential exchange failed", "username", username, "error", err)
		return nil, apperrors.NewProviderError("exchange credentials", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID, "username", username)
	return token, nil
}

// Logout revokes the refresh token at the identity provider
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrInvalidCredentials
	}

	if err := uc.identity.RevokeSession(ctx, refreshToken); err != nil {
		uc.logger.Error("session revocation failed", "error", err)
		return apperrors.NewProviderError("revoke session", err)
	}

	uc.logger.Info("user logged out")
	return nil
}
