package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages the bookmarks of the signed-in customer.
type WishlistUsecase interface {
	List(ctx context.Context, sess *entity.Session) ([]*entity.WishlistItem, error)
	Add(ctx context.Context, sess *entity.Session, productID uuid.UUID) (*entity.WishlistItem, error)
	Remove(ctx context.Context, sess *entity.Session, productID uuid.UUID) error
}
