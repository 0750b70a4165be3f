package service

import (
	"context"
)

// OrderEvent is published when an order is placed or changes status.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Type          string `json:"type"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Total         string `json:"total"` // Decimal string, never a float
	Email         string `json:"email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
