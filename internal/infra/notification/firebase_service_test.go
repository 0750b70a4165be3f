package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := newFirebaseService(sender, discardLogger())

	err := svc.SendTopicNotification(context.Background(), "admin-orders", "Nuevo pedido", "Ana Pérez - S/ 249.90",
		map[string]string{"order_id": "o-1"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "admin-orders", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Nuevo pedido", msg.Notification.Title)
	assert.Equal(t, "o-1", msg.Data["order_id"])
}

func TestFirebaseService_Errors(t *testing.T) {
	svc := newFirebaseService(&fakeSender{err: errors.New("unavailable")}, discardLogger())

	err := svc.SendTopicNotification(context.Background(), "admin-orders", "t", "b", nil)
	assert.ErrorContains(t, err, "admin-orders")

	err = svc.SendTopicNotification(context.Background(), "", "t", "b", nil)
	assert.ErrorContains(t, err, "topic is required")
}

func TestLogService(t *testing.T) {
	svc := NewLogService(discardLogger())
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "admin-orders", "t", "b", nil))
}
