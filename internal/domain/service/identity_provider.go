package service

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrNoSession is returned when the provider has no valid session for the presented tokens.
// It is an expected outcome, not a failure.
var ErrNoSession = errors.New("no active identity session")

// IdentityProvider is the hosted identity service. Provider-specific failures
// are translated into domain errors by the adapter.
type IdentityProvider interface {
	// SignIn starts a USER_PASSWORD_AUTH sign-in.
	SignIn(ctx context.Context, username, password string) (*entity.SignInResult, error)

	// RespondToNewPasswordChallenge answers the new-password challenge of a sign-in.
	RespondToNewPasswordChallenge(ctx context.Context, username, challengeSession, newPassword string) (*entity.SignInResult, error)

	SignUp(ctx context.Context, req *entity.SignUpRequest) (*entity.SignUpResult, error)

	// ConfirmSignUp submits the confirmation code and returns whether sign-up is complete.
	ConfirmSignUp(ctx context.Context, username, code string) (bool, error)

	// SignOut invalidates every token issued to the user.
	SignOut(ctx context.Context, accessToken string) error

	// GetUser returns the current user and attributes for an access token.
	// An invalid or expired token yields ErrNoSession.
	GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, entity.UserAttributes, error)

	// RefreshSession exchanges a refresh token for fresh tokens.
	// A revoked or expired refresh token yields ErrNoSession.
	RefreshSession(ctx context.Context, username, refreshToken string) (*entity.AuthTokens, error)
}
