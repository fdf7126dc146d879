package auth0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"user-service/app/config"
	"user-service/app/domain"
)

const (
	// grantTypePasswordRealm is the provider's resource-owner grant
	// variant that pins the exchange to a named connection realm
	grantTypePasswordRealm = "http://auth0.com/oauth/grant-type/password-realm"

	defaultHTTPTimeout = 30 * time.Second

	// maxResponseBodySize bounds response reads (1 MB)
	maxResponseBodySize = 1 << 20
)

// Client is the HTTP driver for the identity provider. It implements
// port.ProviderClient and holds no credential state of its own; token
// caching lives in the gateway layer.
type Client struct {
	httpClient *http.Client
	creds      *clientcredentials.Config
	cfg        *config.Config
	logger     *slog.Logger

	tokenURL     string
	revokeURL    string
	usersURL     string
	wellKnownURL string
}

// NewClient creates a new identity provider client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Auth0Domain == "" {
		return nil, fmt.Errorf("identity provider domain is not configured")
	}

	httpClient := &http.Client{
		Timeout: defaultHTTPTimeout,
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.Auth0ClientID,
		ClientSecret: cfg.Auth0ClientSecret,
		TokenURL:     cfg.TokenURL(),
		AuthStyle:    oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"audience": {cfg.Auth0Audience},
		},
	}

	logger.Info("identity provider client initialized",
		"domain", cfg.Auth0Domain,
		"audience", cfg.Auth0Audience,
		"connection", cfg.Auth0Connection)

	return &Client{
		httpClient:   httpClient,
		creds:        creds,
		cfg:          cfg,
		logger:       logger.With("component", "auth0_client"),
		tokenURL:     cfg.TokenURL(),
		revokeURL:    cfg.RevokeURL(),
		usersURL:     cfg.ManagementUsersURL(),
		wellKnownURL: fmt.Sprintf("https://%s/.well-known/openid-configuration", cfg.Auth0Domain),
	}, nil
}

// ClientCredentialsToken performs a client-credentials exchange for a
// service-level access token scoped to the management audience.
func (c *Client) ClientCredentialsToken(ctx context.Context) (*domain.ServiceToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.creds.Token(ctx)
	if err != nil {
		c.logger.Error("client credentials exchange failed", "error", err)
		return nil, fmt.Errorf("client credentials exchange failed: %w", err)
	}

	c.logger.Debug("service token obtained", "expires_at", token.Expiry)

	return &domain.ServiceToken{
		AccessToken: token.AccessToken,
		ExpiresIn:   int64(time.Until(token.Expiry).Seconds()),
	}, nil
}

// PasswordToken performs a resource-owner password exchange against the
// configured realm with scope "openid profile email". Provider-side
// failures are returned unchanged; no retry happens at this layer.
func (c *Client) PasswordToken(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	form := url.Values{
		"grant_type":    {grantTypePasswordRealm},
		"client_id":     {c.cfg.Auth0ClientID},
		"client_secret": {c.cfg.Auth0ClientSecret},
		"username":      {username},
		"password":      {password},
		"realm":         {c.cfg.Auth0Realm},
		"audience":      {c.cfg.Auth0Audience},
		"scope":         {c.cfg.Auth0Scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("password exchange request failed", "username", username, "error", err)
		return nil, fmt.Errorf("password exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if oauthErr := parseOAuthError(resp.StatusCode, body); oauthErr != nil {
			c.logger.Warn("password exchange rejected", "username", username, "error", oauthErr.Code)
			return nil, oauthErr
		}
		return nil, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	tokenResponse := &domain.TokenResponse{}
	if err := json.Unmarshal(body, tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	c.logger.Debug("principal token obtained", "username", username, "expires_in", tokenResponse.ExpiresIn)

	return tokenResponse, nil
}

// CreateAccount creates a remote account through the management API
// using the supplied service access token.
func (c *Client) CreateAccount(ctx context.Context, accessToken, email, password string) error {
	payload := map[string]string{
		"connection": c.cfg.Auth0Connection,
		"email":      email,
		"password":   password,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode account payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.usersURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build account request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("account creation request failed", "email", email, "error", err)
		return fmt.Errorf("account creation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("failed to read account response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		mgmtErr := parseManagementError(resp.StatusCode, respBody)
		c.logger.Warn("account creation rejected", "email", email, "status", resp.StatusCode)
		return mgmtErr
	}

	c.logger.Info("remote account created", "email", email)
	return nil
}

// RevokeRefreshToken invalidates the refresh token at the provider's
// revocation endpoint using client credentials.
func (c *Client) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	payload := map[string]string{
		"client_id":     c.cfg.Auth0ClientID,
		"client_secret": c.cfg.Auth0ClientSecret,
		"token":         refreshToken,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode revocation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.revokeURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build revocation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("revocation request failed", "error", err)
		return fmt.Errorf("revocation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("failed to read revocation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if oauthErr := parseOAuthError(resp.StatusCode, respBody); oauthErr != nil {
			return oauthErr
		}
		return fmt.Errorf("revocation endpoint returned status %d", resp.StatusCode)
	}

	c.logger.Info("refresh token revoked")
	return nil
}

// HealthCheck verifies the provider is reachable by fetching its OpenID
// discovery document.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.wellKnownURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build health check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity provider discovery returned status %d", resp.StatusCode)
	}

	return nil
}
