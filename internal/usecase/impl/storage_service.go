package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type storageService struct {
	storage        service.ObjectStorage
	signedURLTTL   time.Duration
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewStorageService creates a new storage service instance
func NewStorageService(storage service.ObjectStorage, cfg *config.Config, logger *slog.Logger) usecase.StorageUsecase {
	srv := &storageService{
		storage:        storage,
		signedURLTTL:   15 * time.Minute,
		maxUploadBytes: 5 << 20,
		logger:         logger,
	}
	if cfg.Storage != nil {
		if cfg.Storage.SignedURLTTL > 0 {
			srv.signedURLTTL = cfg.Storage.SignedURLTTL
		}
		if cfg.Storage.MaxUploadBytes > 0 {
			srv.maxUploadBytes = cfg.Storage.MaxUploadBytes
		}
	}

	return srv
}

func (s *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Upload stores an image under an allowed prefix. The body is buffered up to
// the size limit so oversized uploads never reach the bucket.
func (s *storageService) Upload(ctx context.Context, sess *entity.Session, key, contentType string, body io.Reader) (*service.ObjectAttributes, error) {
	if err := s.check(sess, key, policy.ActionWrite); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("only image uploads are accepted")
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("upload exceeds the size limit")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty upload")
	}

	attrs, err := s.storage.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store object")
	}

	s.log(ctx).Info("Object uploaded",
		slog.String("key", key),
		slog.Int64("size", attrs.Size),
		slog.String("role", sess.Role().String()),
	)

	return attrs, nil
}

func (s *storageService) SignedURL(ctx context.Context, sess *entity.Session, key string) (string, error) {
	if err := s.check(sess, key, policy.ActionRead); err != nil {
		return "", err
	}

	url, err := s.storage.SignedURL(ctx, key, s.signedURLTTL)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return "", domainerrors.ErrObjectNotFound
		}

		return "", errors.Wrap(err, "failed to sign object url")
	}

	return url, nil
}

func (s *storageService) Delete(ctx context.Context, sess *entity.Session, key string) error {
	if err := s.check(sess, key, policy.ActionDelete); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return domainerrors.ErrObjectNotFound
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}

func (s *storageService) check(sess *entity.Session, key string, action policy.Action) error {
	if !policy.ValidKey(key) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid object key")
	}
	role := sess.Role()
	if policy.Allows(role, key, action) {
		return nil
	}
	if role == entity.RoleGuest {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden.WithDetails(string(action) + " " + key)
}
