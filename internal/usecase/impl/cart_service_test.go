package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetActiveCart(t *testing.T) {
	ctx := context.Background()

	t.Run("guest", func(t *testing.T) {
		srv := NewCartService(mockRepo.NewMockTransactionManager(t))

		_, err := srv.GetActiveCart(ctx, guestSession())

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("found", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		runTx(txManager, factory)

		cartID := uuid.New()
		cartRepo.EXPECT().FindActiveByUser(ctx, "sub-123").Return(&entity.Cart{ID: cartID, Status: entity.CartActive}, nil)

		cart, err := NewCartService(txManager).GetActiveCart(ctx, customerSession())

		require.NoError(t, err)
		assert.Equal(t, cartID, cart.ID)
	})

	t.Run("none", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		runTx(txManager, factory)

		cartRepo.EXPECT().FindActiveByUser(ctx, "sub-123").Return(nil, repository.ErrCartNotFound)

		_, err := NewCartService(txManager).GetActiveCart(ctx, customerSession())

		assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	})
}
