package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// SessionModel mirrors the 'browser_sessions' table. State holds the whole session as jsonb.
type SessionModel struct {
	ID        string         `gorm:"type:varchar(64);primary_key"`
	State     entity.Session `gorm:"type:jsonb;serializer:json;not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "browser_sessions"
}

// All returns every persistence model, for code generation and migrations.
func All() []any {
	return []any{
		&ProfileModel{},
		&CategoryModel{},
		&BrandModel{},
		&ProductModel{},
		&ProductCategoryModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&WishlistModel{},
		&SessionModel{},
	}
}
