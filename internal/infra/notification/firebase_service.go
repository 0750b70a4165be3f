package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client the service needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase Cloud Messaging backed NotificationService.
// An empty credentials path uses application default credentials.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client messageSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{client: client, logger: logger}
}

// SendTopicNotification pushes to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("notification topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.DebugContext(ctx, "Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// logService stands in for FCM when Firebase is not configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService returns a NotificationService that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Topic notification (firebase disabled)",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
