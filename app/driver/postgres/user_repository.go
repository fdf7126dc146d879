package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"user-service/app/domain"
	"user-service/app/port"
)

// pgUniqueViolation is the SQLSTATE code for a unique constraint conflict
const pgUniqueViolation = "23505"

const insertUserSQL = `
	INSERT INTO users (id, username, password_hash, email, created_at, updated_at)
	VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	RETURNING id, username, password_hash, email, created_at, updated_at`

// Role names that do not exist in the roles table are skipped silently.
const insertUserRolesSQL = `
	INSERT INTO user_roles (user_id, role_id, created_at, updated_at)
	SELECT $1, id, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
	FROM roles
	WHERE name = ANY($2)`

const getUserByUsernameSQL = `
	SELECT id, username, password_hash, email, created_at, updated_at
	FROM users
	WHERE username = $1`

const emailOrUsernameExistsSQL = `
	SELECT EXISTS (
		SELECT 1 FROM users
		WHERE email = $1 OR username = $2
	)`

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	runner *Runner
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		runner: NewRunner(db, logger),
		logger: logger.With("component", "user_repository"),
	}
}

// CreateUser inserts the user row and one membership row per requested
// role name found in the roles table, all in one transaction. A unique
// constraint conflict on username or email is reported as
// domain.ErrAlreadyTaken so the pre-check race never surfaces as a
// generic storage error.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := &domain.User{}

	err := r.runner.InTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertUserSQL,
			user.ID,
			user.Username,
			user.PasswordHash,
			user.Email,
		).Scan(
			&created.ID,
			&created.Username,
			&created.PasswordHash,
			&created.Email,
			&created.CreatedAt,
			&created.UpdatedAt,
		)
		if err != nil {
			return err
		}

		if len(user.Roles) > 0 {
			if _, err := tx.Exec(ctx, insertUserRolesSQL, created.ID, user.Roles); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Warn("user creation hit unique constraint", "username", user.Username)
			return nil, domain.ErrAlreadyTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created.Roles = user.Roles

	r.logger.Info("user created", "user_id", created.ID, "username", created.Username)
	return created, nil
}

// GetUserByUsername returns the matching user, or nil when no user
// exists with that username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	found := true

	err := r.runner.ReadOnly(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, getUserByUsernameSQL, username).Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.Email,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !found {
		return nil, nil
	}

	return user, nil
}

// EmailOrUsernameExists checks both uniqueness fields in a single query.
func (r *UserRepository) EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error) {
	var exists bool

	err := r.runner.ReadOnly(ctx, func(q Querier) error {
		return q.QueryRow(ctx, emailOrUsernameExistsSQL, email, username).Scan(&exists)
	})

	if err != nil {
		return false, fmt.Errorf("failed to check email or username existence: %w", err)
	}

	return exists, nil
}
