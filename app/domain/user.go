package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// emailPattern is intentionally conservative: word characters, dots and
// hyphens in the local part, dot-separated labels in the domain, and a
// final label of 2-4 characters.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// User represents a registered user as stored in the database
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Exclude from JSON
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterUserRequest is the transient registration input. The plaintext
// password never reaches storage; it is hashed before the User is built.
type RegisterUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}

// ValidateRequired checks the mandatory fields in a fixed order:
// username, then password, then email.
func (r *RegisterUserRequest) ValidateRequired() error {
	if strings.TrimSpace(r.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(r.Password) == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}

// NewUser builds a User from a registration request with a freshly
// generated ID and the already-hashed password.
func NewUser(req *RegisterUserRequest, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Roles:        req.Roles,
	}
}

// IsPasswordStrong reports whether the password is at least 8 characters
// long and contains a lowercase letter, an uppercase letter, a digit, and
// a character outside [A-Za-z0-9].
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// IsValidEmail reports whether the email matches the conservative
// local@domain.tld shape accepted at registration.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
