// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile lookup has no match.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists customer profiles.
type ProfileRepository interface {
	// ListByUserID returns the profiles owned by an identity subject, oldest first.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Profile, error)

	// FindByID retrieves a single profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile, filling its ID when empty.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update overwrites an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
