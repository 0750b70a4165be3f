package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Items are a jsonb snapshot of the cart.
type OrderModel struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName       string             `gorm:"type:varchar(100)"`
	LastName        string             `gorm:"type:varchar(100)"`
	Email           string             `gorm:"type:varchar(255);not null"`
	DocumentType    string             `gorm:"type:varchar(16)"`
	DocumentNumber  string             `gorm:"type:varchar(32)"`
	Phone           string             `gorm:"type:varchar(32)"`
	ShippingMethod  string             `gorm:"type:varchar(64)"`
	ShippingAddress string             `gorm:"type:varchar(255)"`
	ShippingCity    string             `gorm:"type:varchar(100)"`
	ShippingState   string             `gorm:"type:varchar(100)"`
	ShippingZip     string             `gorm:"type:varchar(20)"`
	InvoiceType     string             `gorm:"type:varchar(32)"`
	Items           []entity.OrderItem `gorm:"type:jsonb;serializer:json;not null"`
	UserEmail       string             `gorm:"type:varchar(255);index"`
	Subtotal        decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Shipping        decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	Tax             decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	Discount        decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	Total           decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status          string             `gorm:"type:varchar(16);not null;default:'pending';index"`
	TrackingNumber  string             `gorm:"type:varchar(64)"`
	TrackingURL     string             `gorm:"type:varchar(512)"`
	PaymentMethod   string             `gorm:"type:varchar(32)"`
	PaymentStatus   string             `gorm:"type:varchar(16);not null;default:'pending'"`
	LinkPago        string             `gorm:"type:varchar(512)"`
	LinkShort       string             `gorm:"type:varchar(255)"`
	CreatedAt       time.Time          `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
