package constants

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Order event types carried on the order topic.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)
