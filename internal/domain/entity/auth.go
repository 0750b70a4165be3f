// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Standard and custom attribute names stored at the identity provider.
const (
	AttrEmail          = "email"
	AttrPhoneNumber    = "phone_number"
	AttrGivenName      = "given_name"
	AttrFamilyName     = "family_name"
	AttrSub            = "sub"
	AttrDocumentNumber = "custom:document_number"
)

// tokenExpirySkew treats tokens about to expire as already expired.
const tokenExpirySkew = 30 * time.Second

// AuthUser identifies the signed-in account at the identity provider.
type AuthUser struct {
	UserID   string `json:"userId"`   // Provider subject ("sub").
	Username string `json:"username"` // Provider username, usually the normalized identifier.
	LoginID  string `json:"loginId"`  // Identifier exactly as used to sign in.
}

// UserAttributes maps provider attribute names to values.
type UserAttributes map[string]string

// Get returns the attribute value or an empty string.
func (a UserAttributes) Get(name string) string {
	if a == nil {
		return ""
	}

	return a[name]
}

// AuthTokens is the token set issued by the identity provider.
type AuthTokens struct {
	AccessToken  string    `json:"accessToken"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// IsExpired reports whether the access token should no longer be presented.
func (t *AuthTokens) IsExpired(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return true
	}

	return !now.Add(tokenExpirySkew).Before(t.ExpiresAt)
}

// CanRefresh reports whether a refresh token is available.
func (t *AuthTokens) CanRefresh() bool {
	return t != nil && t.RefreshToken != ""
}

// SignInStep is the next action the provider expects after a sign-in attempt.
type SignInStep string

const (
	SignInStepDone                 SignInStep = "DONE"
	SignInStepNewPasswordRequired  SignInStep = "CONFIRM_SIGN_IN_WITH_NEW_PASSWORD_REQUIRED"
	SignInStepConfirmSignUp        SignInStep = "CONFIRM_SIGN_UP"
	SignInStepUnsupportedChallenge SignInStep = "UNSUPPORTED_CHALLENGE"
)

// SignInResult is the outcome of a sign-in or challenge response.
type SignInResult struct {
	IsSignedIn       bool
	NextStep         SignInStep
	ChallengeSession string // Opaque provider session used to answer a challenge.
	Tokens           *AuthTokens
}

// SignUpStep is the next action after a sign-up attempt.
type SignUpStep string

const (
	SignUpStepConfirm SignUpStep = "CONFIRM_SIGN_UP"
	SignUpStepDone    SignUpStep = "DONE"
)

// CodeDeliveryDetails describes where a confirmation code was sent.
type CodeDeliveryDetails struct {
	DeliveryMedium string `json:"deliveryMedium,omitempty"`
	Destination    string `json:"destination,omitempty"`
	AttributeName  string `json:"attributeName,omitempty"`
}

// SignUpNextStep wraps the next sign-up step with its delivery details.
type SignUpNextStep struct {
	SignUpStep          SignUpStep           `json:"signUpStep"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"codeDeliveryDetails,omitempty"`
}

// SignUpRequest is a provider sign-up call.
type SignUpRequest struct {
	Username   string
	Password   string
	Attributes UserAttributes
}

// SignUpResult is the outcome of a sign-up call.
type SignUpResult struct {
	IsSignUpComplete bool           `json:"isSignUpComplete"`
	UserID           string         `json:"userId"`
	NextStep         SignUpNextStep `json:"nextStep"`
}

// IsEmailIdentifier reports whether a login identifier is an email address.
func IsEmailIdentifier(identifier string) bool {
	return strings.Contains(identifier, "@")
}
