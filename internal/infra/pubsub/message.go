package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
// The local publisher produces the same shape so the worker has one decoder.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeOrderEvent extracts the order event carried by a push message.
func (m *PushMessage) DecodeOrderEvent() (*service.OrderEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 payload")
	}

	var event service.OrderEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "invalid order event payload")
	}
	if event.OrderID == "" {
		return nil, errors.New("order event without order id")
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[attrRequestID]
	}

	return &event, nil
}

const (
	attrEventType = "event_type"
	attrOrderID   = "order_id"
	attrRequestID = "request_id"
)

// eventAttributes are set on every message for subscription filters and tracing.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		attrEventType: event.Type,
		attrOrderID:   event.OrderID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
