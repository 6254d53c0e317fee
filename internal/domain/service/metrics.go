package service

// Metrics records domain counters.
type Metrics interface {
	NotificationCreated(notificationType string)
	NotificationSkipped(reason string)
	RealtimePublishFailed(event string)
	MediaCleanupFailed(operation string)
}
