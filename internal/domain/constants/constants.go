package constants

import "time"

// EnvLocal is the environment name used on developer machines.
const EnvLocal = "local"

// Media storage providers
const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderBlob       = "blob"
)

// Realtime providers
const (
	RealtimeProviderWebsocket = "websocket"
	RealtimeProviderNATS      = "nats"
	RealtimeProviderGoogle    = "google"
	RealtimeProviderFirebase  = "firebase"
)

// RealtimeEventNotification is the event name used when a notification is pushed to a recipient.
const RealtimeEventNotification = "notification"

// Media folders
const (
	FolderPublications        = "publications"
	FolderPublicationsUploads = "uploads/publications"
	FolderBuyerAvatars        = "buyer_avatars"
)

// ResourceTypeImage is the media resource type for every upload in this service.
const ResourceTypeImage = "image"

// Image upload limits
const (
	MaxImageSize         int64 = 5 * 1024 * 1024
	AllowedContentPrefix       = "image/"
)

// Catalog defaults
const (
	DefaultPage        = 1
	DefaultPageSize    = 5
	DefaultLatestLimit = 5
)

// Frontend links
const (
	PasswordResetPath    = "/auth/reset-password"
	PublicationSharePath = "/publications"
)

// PasswordResetTokenTTL is the lifetime of the token emailed for password recovery.
const PasswordResetTokenTTL = time.Hour
