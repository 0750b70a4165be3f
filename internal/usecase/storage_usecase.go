package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// StorageUsecase guards object storage access with the path-prefix policy.
type StorageUsecase interface {
	Upload(ctx context.Context, sess *entity.Session, key, contentType string, body io.Reader) (*service.ObjectAttributes, error)
	SignedURL(ctx context.Context, sess *entity.Session, key string) (string, error)
	Delete(ctx context.Context, sess *entity.Session, key string) error
}
