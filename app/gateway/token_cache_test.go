package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"user-service/app/config"
	"user-service/app/domain"
	mock_port "user-service/app/mocks"
)

func cacheTestConfig() *config.Config {
	return &config.Config{
		ServiceTokenTTL:    23 * time.Hour,
		TokenRefreshMargin: 300 * time.Second,
	}
}

func newTestCache(t *testing.T) (*TokenCache, *mock_port.MockProviderClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_port.NewMockProviderClient(ctrl)
	cache := NewTokenCache(client, cacheTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return cache, client
}

func TestGetServiceTokenCachesUntilTTL(t *testing.T) {
	cache, client := newTestCache(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	cache.now = func() time.Time { return current }

	client.EXPECT().ClientCredentialsToken(gomock.Any()).Return(&domain.ServiceToken{
		AccessToken: "service-token-1",
		ExpiresIn:   86400,
	}, nil).Times(1)

	token, err := cache.GetServiceToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "service-token-1", token)

	// Repeated reads within the TTL reuse the entry without another exchange
	current = base.Add(22 * time.Hour)
	token, err = cache.GetServiceToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "service-token-1", token)
}

func TestGetServiceTokenRefreshesAfterTTL(t *testing.T) {
	cache, client := newTestCache(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	cache.now = func() time.Time { return current }

	first := client.EXPECT().ClientCredentialsToken(gomock.Any()).Return(&domain.ServiceToken{
		AccessToken: "service-token-1",
		ExpiresIn:   86400,
	}, nil)
	client.EXPECT().ClientCredentialsToken(gomock.Any()).Return(&domain.ServiceToken{
		AccessToken: "service-token-2",
		ExpiresIn:   86400,
	}, nil).After(first)

	_, err := cache.GetServiceToken(context.Background())
	require.NoError(t, err)

	current = base.Add(23 * time.Hour)
	token, err := cache.GetServiceToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "service-token-2", token)
}

func TestGetServiceTokenExchangeFailure(t *testing.T) {
	cache, client := newTestCache(t)

	client.EXPECT().ClientCredentialsToken(gomock.Any()).Return(nil, errors.New("provider down"))

	token, err := cache.GetServiceToken(context.Background())
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestGetPrincipalTokenCachesPerUsername(t *testing.T) {
	cache, client := newTestCache(t)

	client.EXPECT().PasswordToken(gomock.Any(), "alice", "pw-a").Return(&domain.TokenResponse{
		AccessToken: "alice-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
	}, nil).Times(1)
	client.EXPECT().PasswordToken(gomock.Any(), "bob", "pw-b").Return(&domain.TokenResponse{
		AccessToken: "bob-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
	}, nil).Times(1)

	aliceToken, err := cache.GetPrincipalToken(context.Background(), "alice", "pw-a")
	require.NoError(t, err)
	assert.Equal(t, "alice-token", aliceToken.AccessToken)

	bobToken, err := cache.GetPrincipalToken(context.Background(), "bob", "pw-b")
	require.NoError(t, err)
	assert.Equal(t, "bob-token", bobToken.AccessToken)

	// Second read per user is served from the cache
	aliceToken, err = cache.GetPrincipalToken(context.Background(), "alice", "pw-a")
	require.NoError(t, err)
	assert.Equal(t, "alice-token", aliceToken.AccessToken)
}

func TestGetPrincipalTokenRefreshMarginBoundary(t *testing.T) {
	tests := []struct {
		name             string
		remainingSeconds int64
		wantRefresh      bool
	}{
		{
			name:             "301 seconds remaining is still fresh",
			remainingSeconds: 301,
			wantRefresh:      false,
		},
		{
			name:             "exactly 300 seconds remaining is stale",
			remainingSeconds: 300,
			wantRefresh:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, client := newTestCache(t)

			base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			current := base
			cache.now = func() time.Time { return current }

			const expiresIn = int64(3600)

			first := client.EXPECT().PasswordToken(gomock.Any(), "alice", "pw").Return(&domain.TokenResponse{
				AccessToken: "token-1",
				TokenType:   "Bearer",
				ExpiresIn:   expiresIn,
			}, nil)
			if tt.wantRefresh {
				client.EXPECT().PasswordToken(gomock.Any(), "alice", "pw").Return(&domain.TokenResponse{
					AccessToken: "token-2",
					TokenType:   "Bearer",
					ExpiresIn:   expiresIn,
				}, nil).After(first)
			}

			_, err := cache.GetPrincipalToken(context.Background(), "alice", "pw")
			require.NoError(t, err)

			current = base.Add(time.Duration(expiresIn-tt.remainingSeconds) * time.Second)
			token, err := cache.GetPrincipalToken(context.Background(), "alice", "pw")
			require.NoError(t, err)

			if tt.wantRefresh {
				assert.Equal(t, "token-2", token.AccessToken)
			} else {
				assert.Equal(t, "token-1", token.AccessToken)
			}
		})
	}
}

func TestGetPrincipalTokenExchangeFailureNotCached(t *testing.T) {
	cache, client := newTestCache(t)

	exchangeErr := errors.New("invalid_grant")
	first := client.EXPECT().PasswordToken(gomock.Any(), "alice", "wrong").Return(nil, exchangeErr)
	client.EXPECT().PasswordToken(gomock.Any(), "alice", "right").Return(&domain.TokenResponse{
		AccessToken: "alice-token",
		ExpiresIn:   3600,
	}, nil).After(first)

	_, err := cache.GetPrincipalToken(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, exchangeErr)

	token, err := cache.GetPrincipalToken(context.Background(), "alice", "right")
	require.NoError(t, err)
	assert.Equal(t, "alice-token", token.AccessToken)
}

func TestInvalidateDropsPrincipalEntry(t *testing.T) {
	cache, client := newTestCache(t)

	client.EXPECT().PasswordToken(gomock.Any(), "alice", "pw").Return(&domain.TokenResponse{
		AccessToken: "alice-token",
		ExpiresIn:   3600,
	}, nil).Times(2)

	_, err := cache.GetPrincipalToken(context.Background(), "alice", "pw")
	require.NoError(t, err)

	cache.Invalidate("alice")

	_, err = cache.GetPrincipalToken(context.Background(), "alice", "pw")
	require.NoError(t, err)
}

func TestTokenCacheConcurrentReads(t *testing.T) {
	cache, client := newTestCache(t)

	client.EXPECT().PasswordToken(gomock.Any(), "alice", "pw").Return(&domain.TokenResponse{
		AccessToken: "alice-token",
		ExpiresIn:   3600,
	}, nil).MinTimes(1)

	// Warm the cache, then hammer it from many goroutines
	_, err := cache.GetPrincipalToken(context.Background(), "alice", "pw")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, readErr := cache.GetPrincipalToken(context.Background(), "alice", "pw")
			assert.NoError(t, readErr)
			assert.Equal(t, "alice-token", token.AccessToken)
		}()
	}
	wg.Wait()
}
