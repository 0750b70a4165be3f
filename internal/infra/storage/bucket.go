// Package storage adapts a gocloud.dev blob bucket to service.ObjectStorage.
// The driver is picked by the bucket URL scheme: file://, mem://, s3:// or gs://.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// ErrSigningUnsupported is returned when the bucket driver cannot sign URLs.
var ErrSigningUnsupported = errors.New("bucket driver does not support signed URLs")

type bucketStorage struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without a storage section it falls back to an
// in-memory bucket so local runs work without credentials.
func New(params Params) (service.ObjectStorage, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	} else {
		params.Logger.Warn("Storage bucket not configured, using in-memory bucket")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &bucketStorage{bucket: bucket}
}

func (s *bucketStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (*service.ObjectAttributes, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %q", key)
	}

	size, copyErr := io.Copy(w, body)
	closeErr := w.Close()
	if copyErr != nil {
		return nil, errors.Wrapf(copyErr, "failed to write %q", key)
	}
	if closeErr != nil {
		return nil, errors.Wrapf(closeErr, "failed to commit %q", key)
	}

	return &service.ObjectAttributes{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		ModTime:     time.Now(),
	}, nil
}

func (s *bucketStorage) Attributes(ctx context.Context, key string) (*service.ObjectAttributes, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to read attributes of %q", key)
	}

	return &service.ObjectAttributes{
		Key:         key,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		ModTime:     attrs.ModTime,
	}, nil
}

// SignedURL returns a GET URL for an existing object.
func (s *bucketStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to check %q", key)
	}
	if !exists {
		return "", service.ErrObjectNotFound
	}

	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: expiry,
		Method: http.MethodGet,
	})
	if err != nil {
		if gcerrors.Code(err) == gcerrors.Unimplemented {
			return "", ErrSigningUnsupported
		}

		return "", errors.Wrapf(err, "failed to sign %q", key)
	}

	return url, nil
}

func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete %q", key)
	}

	return nil
}
