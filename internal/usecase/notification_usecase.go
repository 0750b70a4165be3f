package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// ToastUsecase queues transient notifications on a session.
type ToastUsecase interface {
	Show(sess *entity.Session, input *ToastInput) entity.Toast
	List(sess *entity.Session) []entity.Toast
	Remove(sess *entity.Session, id int) bool
}

// ToastInput is a toast request. Zero values take the defaults.
type ToastInput struct {
	Message    string               `json:"message" validate:"required,max=500"`
	Type       entity.ToastType     `json:"type,omitempty"`
	DurationMS int64                `json:"duration,omitempty" validate:"min=0"`
	Position   entity.ToastPosition `json:"position,omitempty"`
}

// OrderNotificationUsecase turns order events into admin push notifications.
type OrderNotificationUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
