package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"user-service/app/config"
	"user-service/app/domain"
	"user-service/app/port"
)

const serviceTokenKey = "service"

// cachedToken pairs a provider response with the instant it stops being
// safe to serve. Freshness is a strict comparison: a token whose expiry
// equals the current instant is already stale.
type cachedToken struct {
	token     *domain.TokenResponse
	expiresAt time.Time
}

// TokenCache implements port.TokenFetcher. It keeps one service token
// and one principal token per username, refreshing each entry through
// the provider client when it has gone stale. Lookups take a read lock;
// exchanges happen outside the lock, so concurrent misses may each hit
// the provider and the last writer wins.
type TokenCache struct {
	client port.ProviderClient
	cfg    *config.Config
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]cachedToken

	// now is replaceable in tests
	now func() time.Time
}

// NewTokenCache creates a new TokenCache instance
func NewTokenCache(client port.ProviderClient, cfg *config.Config, logger *slog.Logger) *TokenCache {
	return &TokenCache{
		client:  client,
		cfg:     cfg,
		logger:  logger.With("component", "token_cache"),
		entries: make(map[string]cachedToken),
		now:     time.Now,
	}
}

// GetServiceToken returns a management-scoped access token, reusing the
// cached one until the configured TTL elapses. The TTL is absolute from
// the moment of issue regardless of the provider's reported expiry.
func (c *TokenCache) GetServiceToken(ctx context.Context) (string, error) {
	if token, ok := c.lookup(serviceTokenKey); ok {
		return token.AccessToken, nil
	}

	serviceToken, err := c.client.ClientCredentialsToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain service token: %w", err)
	}

	c.store(serviceTokenKey, &domain.TokenResponse{
		AccessToken: serviceToken.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   serviceToken.ExpiresIn,
	}, c.now().Add(c.cfg.ServiceTokenTTL))

	c.logger.Info("service token refreshed", "ttl", c.cfg.ServiceTokenTTL)
	return serviceToken.AccessToken, nil
}

// GetPrincipalToken returns the token set for a user's credentials,
// reusing a cached entry while it has more than the refresh margin of
// lifetime left. The password is forwarded to the provider only on a
// cache miss.
func (c *TokenCache) GetPrincipalToken(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	key := principalKey(username)
	if token, ok := c.lookup(key); ok {
		return token, nil
	}

	token, err := c.client.PasswordToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	// Expiry is recorded with the margin already subtracted, so a single
	// comparison decides freshness on the read path.
	lifetime := time.Duration(token.ExpiresIn)*time.Second - c.cfg.TokenRefreshMargin
	c.store(key, token, c.now().Add(lifetime))

	c.logger.Debug("principal token refreshed", "username", username, "expires_in", token.ExpiresIn)
	return token, nil
}

// Invalidate drops the cached token set for a username, if any.
func (c *TokenCache) Invalidate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, principalKey(username))
}

func (c *TokenCache) lookup(key string) (*domain.TokenResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.token, true
}

func (c *TokenCache) store(key string, token *domain.TokenResponse, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cachedToken{token: token, expiresAt: expiresAt}
}

func principalKey(username string) string {
	return "principal:" + username
}
