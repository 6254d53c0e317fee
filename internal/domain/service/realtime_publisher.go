package service

import "context"

// RealtimePublisher pushes live events to the channel of a single recipient.
type RealtimePublisher interface {
	// Publish delivers payload as event on channelKey. Delivery is best-effort.
	Publish(ctx context.Context, channelKey string, event string, payload any) error

	// Close releases any resources held by the publisher
	Close() error
}
