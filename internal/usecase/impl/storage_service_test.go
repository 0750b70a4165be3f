package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStorageService(t *testing.T) (*storageService, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)
	cfg := &config.Config{Storage: &config.StorageConfig{SignedURLTTL: 5 * time.Minute, MaxUploadBytes: 16}}
	srv := NewStorageService(storage, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*storageService)

	return srv, storage
}

func TestStorageService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("guest may upload order images", func(t *testing.T) {
		srv, storage := newTestStorageService(t)
		storage.EXPECT().
			Put(ctx, "order-images/abc.png", "image/png", mock.Anything).
			Return(&service.ObjectAttributes{Key: "order-images/abc.png", Size: 4}, nil)

		attrs, err := srv.Upload(ctx, guestSession(), "order-images/abc.png", "image/png", strings.NewReader("data"))

		require.NoError(t, err)
		assert.Equal(t, int64(4), attrs.Size)
	})

	t.Run("guest may not write products", func(t *testing.T) {
		srv, _ := newTestStorageService(t)

		_, err := srv.Upload(ctx, guestSession(), "products/a.png", "image/png", strings.NewReader("data"))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("customer may not write products", func(t *testing.T) {
		srv, _ := newTestStorageService(t)

		_, err := srv.Upload(ctx, customerSession(), "products/a.png", "image/png", strings.NewReader("data"))

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin writes products", func(t *testing.T) {
		srv, storage := newTestStorageService(t)
		storage.EXPECT().Put(ctx, "products/a.png", "image/png", mock.Anything).Return(&service.ObjectAttributes{Key: "products/a.png"}, nil)

		_, err := srv.Upload(ctx, adminSession(), "products/a.png", "image/png", strings.NewReader("data"))

		require.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		srv, _ := newTestStorageService(t)

		_, err := srv.Upload(ctx, adminSession(), "products/../secrets", "image/png", strings.NewReader("x"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = srv.Upload(ctx, adminSession(), "unknown/a.png", "image/png", strings.NewReader("x"))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = srv.Upload(ctx, adminSession(), "products/a.txt", "text/plain", strings.NewReader("x"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = srv.Upload(ctx, adminSession(), "products/big.png", "image/png", strings.NewReader(strings.Repeat("x", 17)))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = srv.Upload(ctx, adminSession(), "products/empty.png", "image/png", strings.NewReader(""))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStorageService_SignedURL(t *testing.T) {
	ctx := context.Background()
	srv, storage := newTestStorageService(t)

	storage.EXPECT().SignedURL(ctx, "brands/logo.png", 5*time.Minute).Return("https://signed", nil)
	storage.EXPECT().SignedURL(ctx, "brands/missing.png", 5*time.Minute).Return("", service.ErrObjectNotFound)

	url, err := srv.SignedURL(ctx, guestSession(), "brands/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)

	_, err = srv.SignedURL(ctx, guestSession(), "brands/missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrObjectNotFound)
}

func TestStorageService_Delete(t *testing.T) {
	ctx := context.Background()
	srv, storage := newTestStorageService(t)

	assert.ErrorIs(t, srv.Delete(ctx, customerSession(), "order-images/a.png"), domainerrors.ErrForbidden)

	storage.EXPECT().Delete(ctx, "order-images/a.png").Return(nil)
	require.NoError(t, srv.Delete(ctx, adminSession(), "order-images/a.png"))
}

func TestNewStorageService_Defaults(t *testing.T) {
	srv := NewStorageService(mockSvc.NewMockObjectStorage(t), &config.Config{}, slog.Default()).(*storageService)

	assert.Equal(t, 15*time.Minute, srv.signedURLTTL)
	assert.Equal(t, int64(5<<20), srv.maxUploadBytes)
}
