package domain

// TokenResponse is the full token payload returned by the identity
// provider for a resource-owner password exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ServiceToken is the service-level bearer credential used to
// authenticate administrative calls to the identity provider.
type ServiceToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
