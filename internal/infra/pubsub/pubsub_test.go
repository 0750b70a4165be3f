package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:     "req-1",
		Type:          constants.OrderEventPlaced,
		OrderID:       "0190c3a4-0000-7000-8000-000000000001",
		Status:        "pending",
		PaymentStatus: "pending",
		Total:         "249.90",
		Email:         "ana@example.com",
		CustomerName:  "Ana Pérez",
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.OrderEventPlaced, received.Message.Attributes[attrEventType])
	assert.NotEmpty(t, received.Message.MessageID)

	event, err := received.DecodeOrderEvent()
	require.NoError(t, err)
	assert.Equal(t, "249.90", event.Total)
	assert.Equal(t, "Ana Pérez", event.CustomerName)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "500")
}

func TestPushMessage_DecodeOrderEvent(t *testing.T) {
	t.Run("request id falls back to attribute", func(t *testing.T) {
		event := sampleEvent()
		event.RequestID = ""
		raw, err := json.Marshal(event)
		require.NoError(t, err)

		var msg PushMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
		msg.Message.Attributes = map[string]string{attrRequestID: "from-attr"}

		got, err := msg.DecodeOrderEvent()
		require.NoError(t, err)
		assert.Equal(t, "from-attr", got.RequestID)
	})

	t.Run("invalid base64", func(t *testing.T) {
		var msg PushMessage
		msg.Message.Data = "%%%"
		_, err := msg.DecodeOrderEvent()
		assert.Error(t, err)
	})

	t.Run("missing order id", func(t *testing.T) {
		var msg PushMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(`{"type":"order.placed"}`))
		_, err := msg.DecodeOrderEvent()
		assert.ErrorContains(t, err, "order id")
	})
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "noop provider", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/pubsub/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "noop section without provider", cfg: &config.PubSubConfig{LocalEndpoint: "http://localhost:8081/pubsub/push"}, noop: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}

func TestMissingSettings(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		cfg      *config.PubSubConfig
		want     []string
	}{
		{"noop needs nothing", constants.PubSubProviderNoop, nil, nil},
		{"local endpoint", constants.PubSubProviderLocal, &config.PubSubConfig{}, []string{"localEndpoint"}},
		{"google lists every gap", constants.PubSubProviderGoogle, nil, []string{"projectId", "topicId"}},
		{"google complete", constants.PubSubProviderGoogle, &config.PubSubConfig{ProjectID: "p", TopicID: "t"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, missingSettings(tt.provider, tt.cfg))
		})
	}
}
