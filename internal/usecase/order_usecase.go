package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderUsecase places and tracks orders.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, sess *entity.Session, input *PlaceOrderInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, sess *entity.Session) ([]*entity.Order, error)
	GetOrder(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, sess *entity.Session, limit, offset int) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, sess *entity.Session, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	PaymentQR(ctx context.Context, sess *entity.Session, id uuid.UUID) ([]byte, error)
}

// OrderLineInput is one requested line. Name and price come from the catalog.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"productID" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=99"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
}

// PlaceOrderInput is a checkout submission.
type PlaceOrderInput struct {
	FirstName       string           `json:"firstName" validate:"required"`
	LastName        string           `json:"lastName" validate:"required"`
	Email           string           `json:"email" validate:"required,email"`
	DocumentType    string           `json:"documentType,omitempty"`
	DocumentNumber  string           `json:"documentNumber,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	ShippingMethod  string           `json:"shippingMethod,omitempty"`
	ShippingAddress string           `json:"shippingAddress" validate:"required"`
	ShippingCity    string           `json:"shippingCity" validate:"required"`
	ShippingState   string           `json:"shippingState,omitempty"`
	ShippingZip     string           `json:"shippingZip,omitempty"`
	InvoiceType     string           `json:"invoiceType,omitempty"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	Shipping        decimal.Decimal  `json:"shipping"`
	Items           []OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusInput is an admin fulfilment update. Empty fields are kept.
type UpdateOrderStatusInput struct {
	Status         entity.OrderStatus   `json:"status,omitempty"`
	PaymentStatus  entity.PaymentStatus `json:"paymentStatus,omitempty"`
	TrackingNumber *string              `json:"trackingNumber,omitempty"`
	TrackingURL    *string              `json:"trackingUrl,omitempty" validate:"omitempty,url"`
	PaymentLink    *string              `json:"linkPago,omitempty" validate:"omitempty,url"`
	PaymentShort   *string              `json:"linkShort,omitempty"`
}
