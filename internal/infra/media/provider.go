package media

import (
	"context"
	"io"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrMediaDisabled is returned by the no-op storage on upload.
var ErrMediaDisabled = errors.New("media storage is not configured")

// noopStorage rejects uploads and ignores deletions when no media host is configured.
type noopStorage struct {
	logger *slog.Logger
}

func (s *noopStorage) Upload(ctx context.Context, _ io.Reader, opts service.UploadOptions) (*service.StoredObject, error) {
	s.logger.WarnContext(ctx, "[NoopMedia] Upload attempted without media storage", slog.String("folder", opts.Folder))

	return nil, ErrMediaDisabled
}

func (s *noopStorage) Destroy(context.Context, string, service.DestroyOptions) error {
	return nil
}

func (s *noopStorage) PublicIDFromURL(string) (string, bool) {
	return "", false
}

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage creates a MediaStorage based on configuration
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Media storage not configured, uploads are disabled")

		return &noopStorage{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.MediaProviderCloudinary:
		c := cfg.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return nil, errors.New("cloud name, api key and api secret are required for cloudinary provider")
		}
		logger.Info("Using Cloudinary media storage", slog.String("cloud_name", c.CloudName))

		return NewCloudinaryStorage(c.CloudName, c.APIKey, c.APISecret, logger)

	case constants.MediaProviderBlob:
		if cfg.Blob.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob provider")
		}
		storage, err := NewBlobStorage(params.Ctx, cfg.Blob.BucketURL, cfg.Blob.PublicBaseURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob media storage", slog.String("bucket", cfg.Blob.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing media bucket")

				return storage.Close()
			},
		})

		return storage, nil

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaStorage),
)
