package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a product bookmarked by a signed-in customer.
type WishlistItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userID"`
	ProductID uuid.UUID `json:"productID"`
	Product   *Product  `json:"product,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}
