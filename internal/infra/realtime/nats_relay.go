package realtime

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// Broadcaster delivers an event to the connections this process holds.
type Broadcaster interface {
	Publish(ctx context.Context, channelKey, event string, payload any) error
}

// NATSRelay forwards events published on <prefix>.* to a local broadcaster.
type NATSRelay struct {
	conn   *nats.Conn
	sub    *nats.Subscription
	prefix string
	local  Broadcaster
	logger *slog.Logger
}

// NewNATSRelay wraps an established connection; call Start to subscribe.
func NewNATSRelay(conn *nats.Conn, prefix string, local Broadcaster, logger *slog.Logger) *NATSRelay {
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}

	return &NATSRelay{conn: conn, prefix: prefix, local: local, logger: logger}
}

// Start subscribes to every channel under the prefix.
func (r *NATSRelay) Start() error {
	sub, err := r.conn.Subscribe(r.prefix+".*", func(msg *nats.Msg) {
		r.handle(context.Background(), msg.Data)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s.*", r.prefix)
	}
	r.sub = sub

	r.logger.Info("[NATSRelay] Subscribed", slog.String("subject", sub.Subject))

	return nil
}

func (r *NATSRelay) handle(ctx context.Context, data []byte) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		r.logger.Warn("[NATSRelay] Dropping undecodable event", slog.Any("error", err))

		return
	}

	if err := r.local.Publish(ctx, env.Channel, env.Event, env.Payload); err != nil {
		r.logger.Warn("[NATSRelay] Failed to deliver event",
			slog.String("channel", env.Channel),
			slog.Any("error", err),
		)
	}
}

// Stop drains the subscription and closes the connection.
func (r *NATSRelay) Stop() error {
	if r.sub != nil {
		if err := r.sub.Unsubscribe(); err != nil {
			r.logger.Warn("[NATSRelay] Unsubscribe failed", slog.Any("error", err))
		}
	}
	r.conn.Close()

	return nil
}
