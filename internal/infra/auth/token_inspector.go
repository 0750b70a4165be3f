// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"slices"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// cognitoClaims are the access token claims issued by the user pool.
type cognitoClaims struct {
	Username string   `json:"username"`
	Groups   []string `json:"cognito:groups"`
	TokenUse string   `json:"token_use"`
	jwt.RegisteredClaims
}

// tokenInspector decodes provider tokens without verifying signatures.
// Tokens are only ever taken from the provider's own TLS responses and kept server-side.
type tokenInspector struct {
	parser     *jwt.Parser
	adminGroup string
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector(cfg *config.Config) service.TokenInspector {
	adminGroup := "admin"
	if cfg.Cognito != nil && cfg.Cognito.AdminGroup != "" {
		adminGroup = cfg.Cognito.AdminGroup
	}

	return &tokenInspector{
		parser:     jwt.NewParser(),
		adminGroup: adminGroup,
	}
}

// Inspect decodes the claims of a token.
func (i *tokenInspector) Inspect(token string) (*service.TokenClaims, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}

	var claims cognitoClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode token")
	}

	out := &service.TokenClaims{
		Subject:  claims.Subject,
		Username: claims.Username,
		Groups:   claims.Groups,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// IsAdmin reports whether the token carries the admin group.
func (i *tokenInspector) IsAdmin(token string) bool {
	claims, err := i.Inspect(token)
	if err != nil {
		return false
	}

	return slices.Contains(claims.Groups, i.adminGroup)
}
