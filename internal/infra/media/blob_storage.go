package media

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// sniffLen is how much of the upload http.DetectContentType looks at.
const sniffLen = 512

// blobStorage implements service.MediaStorage on a gocloud.dev bucket (file://, mem://, s3://, gs://).
// Objects are addressed as <folder>/<uuid>; PublicBaseURL + "/" + key is the public URL.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage opens the bucket at bucketURL.
func NewBlobStorage(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (*blobStorage, error) {
	if publicBaseURL == "" {
		return nil, errors.New("public base URL is required for blob storage")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return newBlobStorage(bucket, publicBaseURL, logger), nil
}

func newBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobStorage) Upload(ctx context.Context, content io.Reader, opts service.UploadOptions) (*service.StoredObject, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]

	key := path.Join(opts.Folder, uuid.NewString())

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: http.DetectContentType(head)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, io.MultiReader(bytes.NewReader(head), content)); err != nil {
		_ = w.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.DebugContext(ctx, "[Blob] Object written", slog.String("key", key))

	return &service.StoredObject{SecureURL: s.publicBaseURL + "/" + key, PublicID: key}, nil
}

func (s *blobStorage) Destroy(ctx context.Context, publicID string, _ service.DestroyOptions) error {
	if err := s.bucket.Delete(ctx, publicID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", publicID)
	}

	return nil
}

func (s *blobStorage) PublicIDFromURL(rawURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	key, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil || key == "" {
		return "", false
	}

	return key, true
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
