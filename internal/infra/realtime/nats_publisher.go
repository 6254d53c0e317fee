package realtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const (
	natsConnectWait   = 5 * time.Second
	natsMaxReconnects = 5
	natsReconnectWait = 2 * time.Second

	defaultSubjectPrefix = "notifications"
)

// natsPublisher publishes each event on <prefix>.<channelKey>.
type natsPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewNATSConnection dials the NATS server with reconnect handling.
func NewNATSConnection(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.Timeout(natsConnectWait),
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS at %s", url)
	}

	return nc, nil
}

// NewNATSPublisher wraps an established connection.
func NewNATSPublisher(conn *nats.Conn, prefix string, logger *slog.Logger) (*natsPublisher, error) {
	if conn == nil {
		return nil, errors.New("NATS connection cannot be nil")
	}
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}

	return &natsPublisher{conn: conn, prefix: prefix, logger: logger}, nil
}

func (p *natsPublisher) subject(channelKey string) string {
	return p.prefix + "." + channelKey
}

func (p *natsPublisher) Publish(ctx context.Context, channelKey, event string, payload any) error {
	data, err := newEnvelope(channelKey, event, payload).marshal()
	if err != nil {
		return err
	}

	subject := p.subject(channelKey)
	if err := p.conn.Publish(subject, data); err != nil {
		return errors.Wrapf(err, "failed to publish message to NATS subject %s", subject)
	}

	p.logger.DebugContext(ctx, "[NATS] Event published", slog.String("subject", subject))

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *natsPublisher) Close() error {
	p.conn.Close()

	return nil
}
