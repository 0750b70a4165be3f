package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase reads the stored cart of the signed-in customer.
type CartUsecase interface {
	GetActiveCart(ctx context.Context, sess *entity.Session) (*entity.Cart, error)
}
