package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is returned when a user has no active cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository reads stored carts.
type CartRepository interface {
	// FindActiveByUser returns the user's active cart with items and products.
	FindActiveByUser(ctx context.Context, userID string) (*entity.Cart, error)
}
