package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops order events. Checkout still succeeds; only the
// confirmation push is lost.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Order event dropped",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the order event transport named by pubsub.provider.
// An absent section or provider means noop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	provider := constants.PubSubProviderNoop
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	if missing := missingSettings(provider, cfg); len(missing) > 0 {
		return nil, errors.Errorf("pubsub provider %q requires %s", provider, strings.Join(missing, ", "))
	}

	var publisher service.EventPublisher
	switch provider {
	case constants.PubSubProviderNoop:
		params.Logger.Info("PubSub not configured, order events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	case constants.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger)
	case constants.PubSubProviderGoogle:
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}
	params.Logger.Info("Order events enabled", slog.String("provider", provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing order event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// missingSettings lists the pubsub keys provider needs that cfg leaves empty.
func missingSettings(provider string, cfg *config.PubSubConfig) []string {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	var missing []string
	switch provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			missing = append(missing, "localEndpoint")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			missing = append(missing, "projectId")
		}
		if cfg.TopicID == "" {
			missing = append(missing, "topicId")
		}
	}

	return missing
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
