package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderNotificationService_HandleOrderEvent(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("placed order goes to the configured topic", func(t *testing.T) {
		notifier := mockSvc.NewMockNotificationService(t)
		cfg := &config.Config{Firebase: &config.FirebaseConfig{AdminTopic: "ops"}}
		srv := NewOrderNotificationService(notifier, cfg, logger)

		notifier.EXPECT().
			SendTopicNotification(ctx, "ops", "Nuevo pedido", "Ana Quispe realizó un pedido por 214.80",
				mock.MatchedBy(func(data map[string]string) bool {
					return data["order_id"] == "0190f3a4-aaaa-7bbb-8ccc-123456789abc" && data["event_type"] == constants.OrderEventPlaced
				})).
			Return(nil)

		err := srv.HandleOrderEvent(ctx, &service.OrderEvent{
			Type:         constants.OrderEventPlaced,
			OrderID:      "0190f3a4-aaaa-7bbb-8ccc-123456789abc",
			Total:        "214.80",
			CustomerName: "Ana Quispe",
		})

		require.NoError(t, err)
	})

	t.Run("status change uses the default topic", func(t *testing.T) {
		notifier := mockSvc.NewMockNotificationService(t)
		srv := NewOrderNotificationService(notifier, &config.Config{}, logger)

		notifier.EXPECT().
			SendTopicNotification(ctx, "admin-orders", "Pedido actualizado", "Pedido 0190f3a4: estado shipped, pago paid", mock.Anything).
			Return(nil)

		err := srv.HandleOrderEvent(ctx, &service.OrderEvent{
			Type:          constants.OrderEventStatusChanged,
			OrderID:       "0190f3a4-aaaa-7bbb-8ccc-123456789abc",
			Status:        "shipped",
			PaymentStatus: "paid",
		})

		require.NoError(t, err)
	})

	t.Run("malformed events", func(t *testing.T) {
		srv := NewOrderNotificationService(mockSvc.NewMockNotificationService(t), &config.Config{}, logger)

		assert.ErrorIs(t, srv.HandleOrderEvent(ctx, &service.OrderEvent{Type: constants.OrderEventPlaced}), domainerrors.ErrValidationFailed)
		assert.ErrorIs(t, srv.HandleOrderEvent(ctx, &service.OrderEvent{Type: "order.exploded", OrderID: "x"}), domainerrors.ErrValidationFailed)
	})

	t.Run("push failure", func(t *testing.T) {
		notifier := mockSvc.NewMockNotificationService(t)
		srv := NewOrderNotificationService(notifier, &config.Config{}, logger)
		notifier.EXPECT().SendTopicNotification(ctx, "admin-orders", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))

		err := srv.HandleOrderEvent(ctx, &service.OrderEvent{Type: constants.OrderEventPlaced, OrderID: "x", Email: "a@b.com"})

		assert.Error(t, err)
	})
}
