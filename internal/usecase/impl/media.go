package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
	"marketplace/internal/util"
)

// validateImage rejects uploads that are not images or exceed the size limit.
func validateImage(image *usecase.ImageUpload) error {
	if image == nil || image.Content == nil {
		return domainerrors.ErrImageRequired
	}

	if !strings.HasPrefix(image.ContentType, constants.AllowedContentPrefix) {
		return domainerrors.ErrImageInvalidType.WithDetails(image.ContentType)
	}

	if image.Size > constants.MaxImageSize {
		return domainerrors.ErrImageTooLarge.WithDetails("max " + util.FormatBytes(constants.MaxImageSize))
	}

	return nil
}

func uploadImage(ctx context.Context, storage service.MediaStorage, image *usecase.ImageUpload, folder string) (*service.StoredObject, error) {
	stored, err := storage.Upload(ctx, image.Content, service.UploadOptions{
		Folder:       folder,
		ResourceType: constants.ResourceTypeImage,
	})
	if err != nil {
		return nil, domainerrors.NewUpstreamError(errors.Wrap(err, "upload image"), "media", "No se pudo subir la imagen")
	}

	return stored, nil
}

// assetCleaner removes media that no longer belongs to any record. It never fails the caller.
type assetCleaner struct {
	storage service.MediaStorage
	metrics service.Metrics
}

// destroyURL deletes the asset behind rawURL when it is hosted by the configured storage.
func (c assetCleaner) destroyURL(ctx context.Context, logger *slog.Logger, rawURL, operation string) {
	if rawURL == "" {
		return
	}

	publicID, ok := c.storage.PublicIDFromURL(rawURL)
	if !ok {
		return
	}

	c.destroy(ctx, logger, publicID, operation)
}

func (c assetCleaner) destroy(ctx context.Context, logger *slog.Logger, publicID, operation string) {
	err := c.storage.Destroy(ctx, publicID, service.DestroyOptions{
		ResourceType: constants.ResourceTypeImage,
		Invalidate:   true,
	})
	if err != nil {
		c.metrics.MediaCleanupFailed(operation)
		logger.Warn("Failed to remove media asset",
			slog.String("publicID", publicID),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}
