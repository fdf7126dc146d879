package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeUserNotFound, "user not found"),
			want: "USER_NOT_FOUND: user not found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeDatabaseError, "query failed", errors.New("connection refused")),
			want: "DATABASE_ERROR: query failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(ErrCodeProviderError, "exchange failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestNew_StatusCodes(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		wantStatus int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeUserNotFound, http.StatusNotFound},
		{ErrCodeUserExists, http.StatusUnprocessableEntity},
		{ErrCodeValidationFailed, http.StatusUnprocessableEntity},
		{ErrCodeMissingField, http.StatusUnprocessableEntity},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeInternalError, http.StatusInternalServerError},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrCodeProviderError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_CODE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, New(tt.code, "test").StatusCode)
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeInvalidCredentials, "invalid credentials")
	wrapped := Wrapf(ErrCodeInternalError, appErr, "outer context")

	t.Run("direct AppError", func(t *testing.T) {
		got, ok := AsAppError(appErr)
		require.True(t, ok)
		assert.Equal(t, ErrCodeInvalidCredentials, got.Code)
	})

	t.Run("wrapped AppError", func(t *testing.T) {
		got, ok := AsAppError(wrapped)
		require.True(t, ok)
		// errors.As finds the outermost AppError first
		assert.Equal(t, ErrCodeInternalError, got.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatusCode(ErrInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeUserExists, GetErrorCode(ErrUserExists))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestContextualHelpers(t *testing.T) {
	t.Run("NewValidationFailed", func(t *testing.T) {
		err := NewValidationFailed("email is required")
		assert.Equal(t, ErrCodeValidationFailed, err.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
		assert.Equal(t, "email is required", err.Message)
	})

	t.Run("NewDatabaseError", func(t *testing.T) {
		cause := errors.New("deadlock detected")
		err := NewDatabaseError("create_user", cause)
		assert.Equal(t, ErrCodeDatabaseError, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "create_user", err.Context["operation"])
	})

	t.Run("NewProviderError", func(t *testing.T) {
		cause := errors.New("503 from provider")
		err := NewProviderError("token_exchange", cause)
		assert.Equal(t, ErrCodeProviderError, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "token_exchange", err.Context["operation"])
	})
}

func TestAppError_With(t *testing.T) {
	err := New(ErrCodeBadRequest, "bad request").
		WithDetails("body could not be parsed").
		WithContext("field", "roles").
		WithCause(errors.New("unexpected token"))

	assert.Equal(t, "body could not be parsed", err.Details)
	assert.Equal(t, "roles", err.Context["field"])
	assert.NotNil(t, err.Cause)
}
