package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartStatus is the lifecycle state of a cart.
type CartStatus string

const (
	CartActive    CartStatus = "active"
	CartCheckout  CartStatus = "checkout"
	CartAbandoned CartStatus = "abandoned"
	CartCompleted CartStatus = "completed"
)

// IsValid checks if the CartStatus is a valid value.
func (s CartStatus) IsValid() bool {
	switch s {
	case CartActive, CartCheckout, CartAbandoned, CartCompleted:
		return true
	default:
		return false
	}
}

// Cart is a stored shopping cart. Totals are stored values, not derived.
type Cart struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userID"`
	Items     []*CartItem     `json:"items"`
	Status    CartStatus      `json:"status"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CartItem is one product variation in a cart.
type CartItem struct {
	ID                 uuid.UUID       `json:"id"`
	CartID             uuid.UUID       `json:"cartID"`
	ProductID          uuid.UUID       `json:"productID"`
	Product            *Product        `json:"product,omitempty"`
	Quantity           int             `json:"quantity"`
	Size               string          `json:"size,omitempty"`
	Color              string          `json:"color,omitempty"`
	VariationID        string          `json:"variationID,omitempty"`
	Price              decimal.Decimal `json:"price"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	DiscountPercentage int             `json:"discountPercentage"`
	IsPromoted         bool            `json:"isPromoted"`
}
