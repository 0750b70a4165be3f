// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthUsecase manages the identity state of one browser session.
// Every operation mutates the session it receives; the caller persists it.
type AuthUsecase interface {
	Login(ctx context.Context, sess *entity.Session, identifier, password string) (*LoginResult, error)
	CompleteNewPasswordChallenge(ctx context.Context, sess *entity.Session, input *NewPasswordInput) (bool, error)
	Register(ctx context.Context, sess *entity.Session, input *RegisterInput) (*entity.SignUpResult, error)
	ConfirmSignUp(ctx context.Context, sess *entity.Session, identifier, code string) (bool, error)
	FinishRegistration(ctx context.Context, sess *entity.Session, identifier string) (*entity.Profile, error)
	Logout(ctx context.Context, sess *entity.Session) error
	CheckAuth(ctx context.Context, sess *entity.Session)
	GetAuthToken(ctx context.Context, sess *entity.Session) (string, bool)
	RememberedIdentifiers(ctx context.Context, sess *entity.Session) ([]string, error)
}

// --- Input DTOs ---

// NewPasswordInput answers a forced password change. TemporaryPassword may be
// empty when the session still holds the one used at login.
type NewPasswordInput struct {
	Identifier        string `json:"identifier"`
	TemporaryPassword string `json:"temporaryPassword"`
	NewPassword       string `json:"newPassword" validate:"required,min=8"`
}

// RegisterInput is a customer sign-up. Optional fields become provider
// attributes and are kept for the profile created after confirmation.
type RegisterInput struct {
	Identifier     string `json:"identifier" validate:"required"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
}

// --- Output DTOs ---

// LoginResult is the outcome of a login attempt. When RequiresNewPassword is set
// the caller must follow up with CompleteNewPasswordChallenge.
type LoginResult struct {
	IsSignedIn          bool              `json:"isSignedIn"`
	RequiresNewPassword bool              `json:"requiresNewPassword"`
	Identifier          string            `json:"identifier"`
	TemporaryPassword   string            `json:"-"`
	NextStep            entity.SignInStep `json:"nextStep"`
}

// PendingRegistration is the stash kept between sign-up and first sign-in.
type PendingRegistration struct {
	Identifier     string `json:"identifier"`
	UserID         string `json:"userId"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	SealedPassword []byte `json:"sealedPassword"`
}
