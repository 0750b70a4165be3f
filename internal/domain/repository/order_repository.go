package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByEmail returns orders placed with the given account email, newest first.
	ListByEmail(ctx context.Context, email string) ([]*entity.Order, error)

	// ListAll returns the most recent orders, newest first.
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	Update(ctx context.Context, order *entity.Order) error
}
