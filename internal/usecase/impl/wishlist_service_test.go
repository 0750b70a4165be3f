package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      *wishlistService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	factory.EXPECT().WishlistRepo().Return(wishlistRepo).Maybe()

	srv := NewWishlistService(WishlistServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*wishlistService)
	srv.now = func() time.Time { return authTestNow }

	return wishlistServiceFixtures{
		service:      srv,
		txManager:    txManager,
		factory:      factory,
		wishlistRepo: wishlistRepo,
	}
}

func TestWishlistService_GuestsAreRejected(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()

	_, err := fx.service.List(ctx, guestSession())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.Add(ctx, guestSession(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	assert.ErrorIs(t, fx.service.Remove(ctx, guestSession(), uuid.New()), domainerrors.ErrUnauthenticated)
}

func TestWishlistService_List(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()
	runTx(fx.txManager, fx.factory)

	fx.wishlistRepo.EXPECT().ListByUser(ctx, "sub-123").Return([]*entity.WishlistItem{{UserID: "sub-123"}}, nil)

	items, err := fx.service.List(ctx, customerSession())

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistService_Add(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()
	productID := uuid.New()
	runTx(fx.txManager, fx.factory)

	fx.wishlistRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(item *entity.WishlistItem) bool {
			return item.UserID == "sub-123" && item.ProductID == productID && item.AddedAt.Equal(authTestNow)
		})).
		Return(nil).Once()
	fx.wishlistRepo.EXPECT().Add(ctx, mock.Anything).Return(repository.ErrDuplicateWishlistItem).Once()

	item, err := fx.service.Add(ctx, customerSession(), productID)
	require.NoError(t, err)
	assert.Equal(t, productID, item.ProductID)

	_, err = fx.service.Add(ctx, customerSession(), productID)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistDuplicate)
}

func TestWishlistService_Add_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()
	runTx(fx.txManager, fx.factory)

	fx.wishlistRepo.EXPECT().Add(ctx, mock.Anything).Return(repository.ErrProductNotFound)

	_, err := fx.service.Add(ctx, customerSession(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_Remove(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()
	productID := uuid.New()
	runTx(fx.txManager, fx.factory)

	fx.wishlistRepo.EXPECT().Remove(ctx, "sub-123", productID).Return(nil).Once()
	fx.wishlistRepo.EXPECT().Remove(ctx, "sub-123", productID).Return(repository.ErrWishlistItemNotFound).Once()

	require.NoError(t, fx.service.Remove(ctx, customerSession(), productID))
	assert.ErrorIs(t, fx.service.Remove(ctx, customerSession(), productID), domainerrors.ErrNotFound)
}
