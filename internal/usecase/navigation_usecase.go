package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NavigationUsecase is the page guard run before every storefront navigation.
type NavigationUsecase interface {
	Navigate(ctx context.Context, sess *entity.Session, fullPath string) (*entity.Navigation, error)
}
