package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// maxPlacedOrders bounds the orders a browser can reopen without signing in.
const maxPlacedOrders = 10

// PendingChallenge remembers a sign-in that stopped at the new-password challenge.
type PendingChallenge struct {
	Identifier     string    `json:"identifier"`
	SealedPassword []byte    `json:"sealedPassword"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session is the server-side state of one browser.
// It replaces the global auth/profile/toast stores of a single-page client:
// every usecase receives it explicitly and the delivery layer persists it.
type Session struct {
	ID               string            `json:"id"`
	StoreScope       string            `json:"storeScope"`
	User             *AuthUser         `json:"user,omitempty"`
	Attributes       UserAttributes    `json:"attributes,omitempty"`
	IsAdmin          bool              `json:"isAdmin"`
	LastError        string            `json:"lastError,omitempty"`
	Tokens           *AuthTokens       `json:"tokens,omitempty"`
	PendingChallenge *PendingChallenge `json:"pendingChallenge,omitempty"`
	PendingSignUp    string            `json:"pendingSignUp,omitempty"`
	Profile          *Profile          `json:"profile,omitempty"`
	PlacedOrders     []uuid.UUID       `json:"placedOrders,omitempty"`
	Toasts           []Toast           `json:"toasts,omitempty"`
	LastToastID      int               `json:"lastToastId"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	ExpiresAt        time.Time         `json:"expiresAt"`

	rotatedFrom string
}

// NewSession creates an empty unauthenticated session.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:         id,
		StoreScope: id,
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

// UserEmail returns the email attribute, falling back to the sign-in login id.
func (s *Session) UserEmail() string {
	if s == nil {
		return ""
	}
	if email := s.Attributes.Get(AttrEmail); email != "" {
		return email
	}
	if s.User != nil {
		return s.User.LoginID
	}

	return ""
}

// UserID returns the provider subject of the signed-in user.
func (s *Session) UserID() string {
	if s == nil || s.User == nil {
		return ""
	}

	return s.User.UserID
}

// Role returns the authorization class of the session.
func (s *Session) Role() Role {
	switch {
	case !s.IsAuthenticated():
		return RoleGuest
	case s.IsAdmin:
		return RoleAdmin
	default:
		return RoleAuthenticated
	}
}

// ClearAuth drops all identity state; toasts survive.
func (s *Session) ClearAuth() {
	s.User = nil
	s.Attributes = nil
	s.IsAdmin = false
	s.Tokens = nil
	s.PendingChallenge = nil
}

// ClearProfile drops the cached profile.
func (s *Session) ClearProfile() {
	s.Profile = nil
}

// LocalScope keys the browser-local store. It is fixed when the session is
// created and survives id rotation.
func (s *Session) LocalScope() string {
	if s.StoreScope != "" {
		return s.StoreScope
	}

	return s.ID
}

// Rotate replaces the session id, keeping every other field. The first id of
// the request is remembered so the old record can be removed.
func (s *Session) Rotate(newID string) {
	if s.StoreScope == "" {
		s.StoreScope = s.ID
	}
	if s.rotatedFrom == "" {
		s.rotatedFrom = s.ID
	}
	s.ID = newID
}

// RotatedFrom returns the id the session had before Rotate, or "".
func (s *Session) RotatedFrom() string {
	return s.rotatedFrom
}

// IsBlank reports whether the session holds nothing worth persisting.
func (s *Session) IsBlank() bool {
	return s.User == nil &&
		s.Tokens == nil &&
		s.PendingChallenge == nil &&
		s.PendingSignUp == "" &&
		s.Profile == nil &&
		len(s.PlacedOrders) == 0 &&
		len(s.Toasts) == 0 &&
		s.LastToastID == 0 &&
		s.LastError == "" &&
		s.rotatedFrom == ""
}

// RememberOrder records an order placed from this browser, dropping the
// oldest beyond maxPlacedOrders.
func (s *Session) RememberOrder(id uuid.UUID) {
	s.PlacedOrders = append(s.PlacedOrders, id)
	if over := len(s.PlacedOrders) - maxPlacedOrders; over > 0 {
		s.PlacedOrders = slices.Delete(s.PlacedOrders, 0, over)
	}
}

// PlacedOrder reports whether the order was placed from this browser.
func (s *Session) PlacedOrder(id uuid.UUID) bool {
	return s != nil && slices.Contains(s.PlacedOrders, id)
}

// IsExpired reports whether the session outlived its TTL.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Touch extends the session lifetime.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}
