package domain

import "errors"

// Validation errors form a closed set: every registration failure the
// usecase can report maps to exactly one of these.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrAlreadyTaken     = errors.New("username is already taken")
	ErrWeakPassword     = errors.New("password is not strong enough: it must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidEmail     = errors.New("invalid email address")
)

// Authentication errors. Unknown user and wrong password are deliberately
// indistinguishable to the caller.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// General errors
var (
	ErrInternal = errors.New("internal error")
)

// IsValidationError reports whether err is one of the registration
// validation failures (as opposed to an auth, provider, or storage error).
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrUsernameRequired,
		ErrPasswordRequired,
		ErrEmailRequired,
		ErrAlreadyTaken,
		ErrWeakPassword,
		ErrInvalidEmail,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
