package auth0

import (
	"encoding/json"
	"fmt"
)

// OAuthError represents an OAuth 2.0 error response as defined in
// RFC 6749 Section 5.2.
type OAuthError struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
	StatusCode  int    `json:"-"`
}

func (e *OAuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("oauth error %q (status %d): %s", e.Code, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("oauth error %q (status %d)", e.Code, e.StatusCode)
}

// parseOAuthError attempts to parse an OAuth error response from the
// given response body. It returns nil when the body is not an OAuth
// error payload.
func parseOAuthError(statusCode int, body []byte) *OAuthError {
	var oauthErr OAuthError
	if err := json.Unmarshal(body, &oauthErr); err != nil {
		return nil
	}
	if oauthErr.Code == "" {
		return nil
	}
	oauthErr.StatusCode = statusCode
	return &oauthErr
}

// ManagementError represents an error payload from the provider's
// management API (account creation). Duplicate accounts and validation
// rejections both arrive in this shape.
type ManagementError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"error"`
	Message    string `json:"message"`
}

func (e *ManagementError) Error() string {
	return fmt.Sprintf("management api error %q (status %d): %s", e.Name, e.StatusCode, e.Message)
}

// parseManagementError attempts to parse a management API error body,
// falling back to a generic error carrying the raw status.
func parseManagementError(statusCode int, body []byte) error {
	var mgmtErr ManagementError
	if err := json.Unmarshal(body, &mgmtErr); err == nil && mgmtErr.Message != "" {
		if mgmtErr.StatusCode == 0 {
			mgmtErr.StatusCode = statusCode
		}
		return &mgmtErr
	}
	return fmt.Errorf("management api returned status %d", statusCode)
}
