package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStorage(bucket)
}

func TestBucketStorage_PutAndAttributes(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	attrs, err := s.Put(ctx, "products/blusa.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("png-bytes")), attrs.Size)
	assert.Equal(t, "products/blusa.png", attrs.Key)

	got, err := s.Attributes(ctx, "products/blusa.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, int64(9), got.Size)
}

func TestBucketStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Attributes(ctx, "products/missing.png")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	_, err = s.SignedURL(ctx, "products/missing.png", time.Minute)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	err = s.Delete(ctx, "products/missing.png")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBucketStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Put(ctx, "order-images/o1.jpg", "image/jpeg", strings.NewReader("jpg"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "order-images/o1.jpg"))

	_, err = s.Attributes(ctx, "order-images/o1.jpg")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}
