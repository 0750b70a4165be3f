package service

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when a storage key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectAttributes describes a stored object.
type ObjectAttributes struct {
	Key         string
	ContentType string
	Size        int64
	ModTime     time.Time
}

// ObjectStorage is the managed bucket holding catalog and order images.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (*ObjectAttributes, error)
	Attributes(ctx context.Context, key string) (*ObjectAttributes, error)
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
