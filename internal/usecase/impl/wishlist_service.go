package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/schema"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) List(ctx context.Context, sess *entity.Session) ([]*entity.WishlistItem, error) {
	if err := authorize(sess, schema.ModelWishlist, schema.OpRead, true); err != nil {
		return nil, err
	}

	var items []*entity.WishlistItem
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		items, err = factory.WishlistRepo().ListByUser(ctx, sess.UserID())

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

// Add bookmarks a product for the signed-in customer.
func (srv *wishlistService) Add(ctx context.Context, sess *entity.Session, productID uuid.UUID) (*entity.WishlistItem, error) {
	if err := authorize(sess, schema.ModelWishlist, schema.OpCreate, true); err != nil {
		return nil, err
	}

	item := &entity.WishlistItem{
		UserID:    sess.UserID(),
		ProductID: productID,
		AddedAt:   srv.now().UTC(),
	}
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.WishlistRepo().Add(ctx, item)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateWishlistItem):
			return nil, domainerrors.ErrWishlistDuplicate
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to add wishlist item")
	}

	srv.log(ctx).Debug("Wishlist item added",
		slog.String("user_id", item.UserID),
		slog.String("product_id", productID.String()),
	)

	return item, nil
}

func (srv *wishlistService) Remove(ctx context.Context, sess *entity.Session, productID uuid.UUID) error {
	if err := authorize(sess, schema.ModelWishlist, schema.OpDelete, true); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.WishlistRepo().Remove(ctx, sess.UserID(), productID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("product is not in the wishlist")
		}

		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}
