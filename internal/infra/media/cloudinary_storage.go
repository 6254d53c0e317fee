// Package media stores uploaded images on the configured media host.
package media

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

const (
	cloudinaryHost   = "res.cloudinary.com"
	uploadPathMarker = "/upload/"
	destroyResultOK  = "ok"
	destroyNotFound  = "not found"
)

var versionSegment = regexp.MustCompile(`^v\d+$`)

// cloudinaryStorage implements service.MediaStorage on top of the Cloudinary upload API.
type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	logger    *slog.Logger
}

// NewCloudinaryStorage creates a storage bound to one Cloudinary account.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string, logger *slog.Logger) (*cloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}

	return &cloudinaryStorage{cld: cld, cloudName: cloudName, logger: logger}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, content io.Reader, opts service.UploadOptions) (*service.StoredObject, error) {
	resp, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:       opts.Folder,
		ResourceType: opts.ResourceType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary upload failed")
	}
	if resp.Error.Message != "" {
		return nil, errors.Errorf("cloudinary upload rejected: %s", resp.Error.Message)
	}

	s.logger.DebugContext(ctx, "[Cloudinary] Asset uploaded",
		slog.String("public_id", resp.PublicID),
		slog.String("folder", opts.Folder),
	)

	return &service.StoredObject{SecureURL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (s *cloudinaryStorage) Destroy(ctx context.Context, publicID string, opts service.DestroyOptions) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: opts.ResourceType,
		Invalidate:   api.Bool(opts.Invalidate),
	})
	if err != nil {
		return errors.Wrapf(err, "cloudinary destroy failed for %s", publicID)
	}
	if resp.Error.Message != "" {
		return errors.Errorf("cloudinary destroy rejected for %s: %s", publicID, resp.Error.Message)
	}
	if resp.Result != destroyResultOK && resp.Result != destroyNotFound {
		return errors.Errorf("cloudinary destroy for %s returned %q", publicID, resp.Result)
	}

	return nil
}

func (s *cloudinaryStorage) PublicIDFromURL(rawURL string) (string, bool) {
	return cloudinaryPublicID(rawURL, s.cloudName)
}

// cloudinaryPublicID extracts the public id from a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/<transformations>/v123/<folder>/<name>.<ext>.
func cloudinaryPublicID(rawURL, cloudName string) (string, bool) {
	if rawURL == "" || cloudName == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Host, cloudinaryHost) {
		return "", false
	}
	if !strings.Contains(u.Path, "/"+cloudName+"/") {
		return "", false
	}

	idx := strings.Index(u.Path, uploadPathMarker)
	if idx < 0 {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path[idx+len(uploadPathMarker):], "/"), "/")
	for i, segment := range segments {
		if versionSegment.MatchString(segment) {
			segments = segments[i+1:]

			break
		}
	}

	publicID := strings.Join(segments, "/")
	publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	if publicID == "" {
		return "", false
	}

	return publicID, true
}
