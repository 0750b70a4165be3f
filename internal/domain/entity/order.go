package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	default:
		return false
	}
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentPaid       PaymentStatus = "paid"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentFailed     PaymentStatus = "failed"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAuthorized, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	default:
		return false
	}
}

// OrderItem is a line of an order. Items are stored as an opaque JSON document.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// LineTotal returns price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a placed checkout.
type Order struct {
	ID uuid.UUID `json:"id"`

	// Customer
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	Phone          string `json:"phone,omitempty"`

	// Shipping
	ShippingMethod  string `json:"shippingMethod,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
	ShippingCity    string `json:"shippingCity,omitempty"`
	ShippingState   string `json:"shippingState,omitempty"`
	ShippingZip     string `json:"shippingZip,omitempty"`

	InvoiceType string      `json:"invoiceType,omitempty"`
	Items       []OrderItem `json:"items"`
	UserEmail   string      `json:"userEmail,omitempty"` // Account email when placed by a signed-in customer.

	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`

	Status         OrderStatus `json:"status"`
	TrackingNumber string      `json:"trackingNumber,omitempty"`
	TrackingURL    string      `json:"trackingUrl,omitempty"`

	PaymentMethod string        `json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentLink   string        `json:"linkPago,omitempty"`
	PaymentShort  string        `json:"linkShort,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ComputeTotals derives subtotal and total from the items and the adjustments.
func (o *Order) ComputeTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Add(o.Shipping).Add(o.Tax).Sub(o.Discount)
	if o.Total.IsNegative() {
		o.Total = decimal.Zero
	}
}

// BelongsTo reports whether email is the checkout or account email of the order.
func (o *Order) BelongsTo(email string) bool {
	if email == "" {
		return false
	}

	return strings.EqualFold(o.Email, email) || strings.EqualFold(o.UserEmail, email)
}
