package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase reads and writes the customer profile of the signed-in identity,
// caching it on the session.
type ProfileUsecase interface {
	FetchUserProfile(ctx context.Context, sess *entity.Session, forceRefresh bool) (*entity.Profile, error)
	CreateProfile(ctx context.Context, sess *entity.Session, input *ProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, sess *entity.Session, input *ProfileInput) (*entity.Profile, error)
	ClearProfile(sess *entity.Session)
}

// ProfileInput carries profile fields. Nil fields are left untouched on update.
type ProfileInput struct {
	FirstName      *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName       *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	DocumentNumber *string `json:"documentNumber,omitempty" validate:"omitempty,max=32"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City           *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State          *string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode        *string `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL      *string `json:"avatarUrl,omitempty" validate:"omitempty,max=512"`
	Preferences    *string `json:"preferences,omitempty" validate:"omitempty,json"`
}
