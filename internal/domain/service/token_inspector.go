package service

import "time"

// TokenClaims is the subset of identity-provider access token claims the storefront reads.
type TokenClaims struct {
	Subject   string
	Username  string
	Groups    []string
	ExpiresAt time.Time
}

// TokenInspector reads claims from provider-issued tokens without verifying them.
// Tokens reach the server only from the provider's own responses.
type TokenInspector interface {
	// Inspect decodes the claims of a token.
	Inspect(token string) (*TokenClaims, error)

	// IsAdmin reports whether the token carries the admin group. Malformed or empty tokens yield false.
	IsAdmin(token string) bool
}
