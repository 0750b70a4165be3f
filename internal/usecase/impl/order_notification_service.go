package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const defaultAdminTopic = "admin-orders"

type orderNotificationService struct {
	notifier service.NotificationService
	topic    string
	logger   *slog.Logger
}

// NewOrderNotificationService creates a new order notification service instance
func NewOrderNotificationService(notifier service.NotificationService, cfg *config.Config, logger *slog.Logger) usecase.OrderNotificationUsecase {
	topic := defaultAdminTopic
	if cfg.Firebase != nil && cfg.Firebase.AdminTopic != "" {
		topic = cfg.Firebase.AdminTopic
	}

	return &orderNotificationService{
		notifier: notifier,
		topic:    topic,
		logger:   logger,
	}
}

// HandleOrderEvent pushes an order event to the admin topic.
// Malformed events return a validation error so the caller can drop them.
func (s *orderNotificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || event.OrderID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("order event without order id")
	}

	var title, body string
	switch event.Type {
	case constants.OrderEventPlaced:
		title = "Nuevo pedido"
		body = fmt.Sprintf("%s realizó un pedido por %s", customerLabel(event), event.Total)
	case constants.OrderEventStatusChanged:
		title = "Pedido actualizado"
		body = fmt.Sprintf("Pedido %s: estado %s, pago %s", shortID(event.OrderID), event.Status, event.PaymentStatus)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown order event type " + event.Type)
	}

	data := map[string]string{
		"event_type":     event.Type,
		"order_id":       event.OrderID,
		"status":         event.Status,
		"payment_status": event.PaymentStatus,
		"total":          event.Total,
	}
	if err := s.notifier.SendTopicNotification(ctx, s.topic, title, body, data); err != nil {
		return errors.Wrap(err, "failed to notify admins")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Admin notified of order event",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("topic", s.topic),
	)

	return nil
}

func customerLabel(event *service.OrderEvent) string {
	switch {
	case event.CustomerName != "":
		return event.CustomerName
	case event.Email != "":
		return event.Email
	default:
		return "Un cliente"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
