package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string          `gorm:"type:varchar(128);not null;index"`
	Status    string          `gorm:"type:varchar(16);not null;default:'active'"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity           int             `gorm:"not null;default:1"`
	Size               string          `gorm:"type:varchar(16)"`
	Color              string          `gorm:"type:varchar(32)"`
	VariationID        string          `gorm:"type:varchar(64)"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OriginalPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountPercentage int
	IsPromoted         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
