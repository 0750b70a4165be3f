package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/schema"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
}

// NewCartService is the constructor for cartService.
func NewCartService(txManager repository.TransactionManager) usecase.CartUsecase {
	return &cartService{txManager: txManager}
}

// GetActiveCart returns the stored active cart of the signed-in customer.
// Carts belong to identities, so guests have none.
func (srv *cartService) GetActiveCart(ctx context.Context, sess *entity.Session) (*entity.Cart, error) {
	if !sess.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := authorize(sess, schema.ModelCart, schema.OpRead, true); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		cart, err = factory.CartRepo().FindActiveByUser(ctx, sess.UserID())

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}
