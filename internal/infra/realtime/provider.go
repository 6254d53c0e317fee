package realtime

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when realtime delivery is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, channelKey, event string, _ any) error {
	p.logger.DebugContext(ctx, "[NoopRealtime] Delivery disabled, skipping",
		slog.String("channel", channelKey),
		slog.String("event", event),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for RealtimePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

// NewRealtimePublisher creates a RealtimePublisher based on configuration
func NewRealtimePublisher(params PublisherParams) (service.RealtimePublisher, error) {
	cfg := params.Config.Realtime
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Realtime delivery not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.RealtimePublisher

	switch cfg.Provider {
	case constants.RealtimeProviderWebsocket:
		logger.Info("Using in-process websocket hub for realtime delivery")

		publisher = params.Hub

	case constants.RealtimeProviderNATS:
		if cfg.NATSURL == "" {
			return nil, errors.New("NATS url is required for nats provider")
		}
		conn, err := NewNATSConnection(cfg.NATSURL, params.Config.Env.ServiceName, logger)
		if err != nil {
			return nil, err
		}
		natsPub, err := NewNATSPublisher(conn, cfg.SubjectPrefix, logger)
		if err != nil {
			conn.Close()

			return nil, err
		}
		logger.Info("Using NATS for realtime delivery", slog.String("url", cfg.NATSURL))

		publisher = natsPub

	case constants.RealtimeProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		googlePub, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

		publisher = googlePub

	case constants.RealtimeProviderFirebase:
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for firebase provider")
		}
		firebasePub, err := NewFirebasePublisher(params.Ctx, cfg.CredentialsPath, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase Cloud Messaging for realtime delivery")

		publisher = firebasePub

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RealtimePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub, NewRealtimePublisher),
)
