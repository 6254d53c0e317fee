package service

import (
	"context"
	"io"
)

// UploadOptions controls where and how an object is stored.
type UploadOptions struct {
	Folder       string
	ResourceType string
}

// DestroyOptions controls asset deletion.
type DestroyOptions struct {
	ResourceType string
	// Invalidate asks the provider to purge cached CDN copies.
	Invalidate bool
}

// StoredObject describes an uploaded asset.
type StoredObject struct {
	SecureURL string
	PublicID  string
}

// MediaStorage uploads images to the media host and removes them again.
type MediaStorage interface {
	// Upload stores the content and returns its public URL and stable identifier.
	Upload(ctx context.Context, content io.Reader, opts UploadOptions) (*StoredObject, error)

	// Destroy removes the asset identified by publicID.
	Destroy(ctx context.Context, publicID string, opts DestroyOptions) error

	// PublicIDFromURL returns the identifier of an asset URL hosted by this storage.
	// ok is false when the URL belongs to another host or cannot be parsed.
	PublicIDFromURL(rawURL string) (publicID string, ok bool)
}
