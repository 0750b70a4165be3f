package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the storefront customer data kept next to the identity account.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"userID"` // Identity provider subject of the owner.
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DocumentNumber string    `json:"documentNumber,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	ZipCode        string    `json:"zipCode,omitempty"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	Preferences    string    `json:"preferences,omitempty"` // JSON document owned by the client.
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
