package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	AddedAt   time.Time `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}
