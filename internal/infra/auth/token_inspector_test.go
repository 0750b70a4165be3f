package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key-the-inspector-never-checks"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_Inspect(t *testing.T) {
	inspector := NewTokenInspector(&config.Config{})
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	token := signTestToken(t, jwt.MapClaims{
		"sub":            "6f1c8d7e-sub",
		"username":       "+51987654321",
		"cognito:groups": []string{"admin", "staff"},
		"exp":            exp.Unix(),
		"token_use":      "access",
	})

	claims, err := inspector.Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "6f1c8d7e-sub", claims.Subject)
	assert.Equal(t, "+51987654321", claims.Username)
	assert.Equal(t, []string{"admin", "staff"}, claims.Groups)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestTokenInspector_IsAdmin(t *testing.T) {
	inspector := NewTokenInspector(&config.Config{Cognito: &config.CognitoConfig{AdminGroup: "admin"}})

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"admin group", signTestToken(t, jwt.MapClaims{"sub": "u1", "cognito:groups": []string{"admin"}}), true},
		{"other groups", signTestToken(t, jwt.MapClaims{"sub": "u1", "cognito:groups": []string{"staff"}}), false},
		{"no groups claim", signTestToken(t, jwt.MapClaims{"sub": "u1"}), false},
		{"expired token still decodes", signTestToken(t, jwt.MapClaims{"sub": "u1", "cognito:groups": []string{"admin"}, "exp": time.Now().Add(-time.Hour).Unix()}), true},
		{"malformed token", "not.a.jwt", false},
		{"empty token", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.IsAdmin(tt.token))
		})
	}
}

func TestTokenInspector_CustomAdminGroup(t *testing.T) {
	inspector := NewTokenInspector(&config.Config{Cognito: &config.CognitoConfig{AdminGroup: "backoffice"}})

	assert.True(t, inspector.IsAdmin(signTestToken(t, jwt.MapClaims{"cognito:groups": []string{"backoffice"}})))
	assert.False(t, inspector.IsAdmin(signTestToken(t, jwt.MapClaims{"cognito:groups": []string{"admin"}})))
}
