package realtime

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const firebaseTopicPrefix = "user-"

// firebasePublisher pushes events to the FCM topic "user-<channelKey>" that the
// recipient's devices subscribe to.
type firebasePublisher struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebasePublisher initializes the Firebase app from a service account file.
func NewFirebasePublisher(ctx context.Context, credentialsPath string, logger *slog.Logger) (*firebasePublisher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebasePublisher{client: client, logger: logger}, nil
}

func (p *firebasePublisher) Publish(ctx context.Context, channelKey, event string, payload any) error {
	message, err := buildFirebaseMessage(channelKey, event, payload)
	if err != nil {
		return err
	}

	messageID, err := p.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	p.logger.DebugContext(ctx, "[Firebase] Event sent",
		slog.String("topic", message.Topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildFirebaseMessage(channelKey, event string, payload any) (*messaging.Message, error) {
	data, err := newEnvelope(channelKey, event, payload).marshal()
	if err != nil {
		return nil, err
	}

	message := &messaging.Message{
		Topic: firebaseTopicPrefix + channelKey,
		Data: map[string]string{
			"event":    event,
			"envelope": string(data),
		},
	}

	if notification, ok := payload.(*entity.Notification); ok {
		message.Notification = &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Description,
		}
	}

	return message, nil
}

func (p *firebasePublisher) Close() error {
	return nil
}
