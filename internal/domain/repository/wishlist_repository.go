package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrWishlistItemNotFound is returned when removing a product that is not bookmarked.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrDuplicateWishlistItem is returned when a product is already bookmarked.
	ErrDuplicateWishlistItem = errors.New("product already in wishlist")
)

// WishlistRepository persists product bookmarks.
type WishlistRepository interface {
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID string, productID uuid.UUID) error

	// ListByUser returns the bookmarks of a user with their products, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
}
