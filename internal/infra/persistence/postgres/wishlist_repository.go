package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository returns a WishlistRepository backed by GORM.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	if item.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate wishlist id")
		}
		item.ID = id
	}

	row := &model.WishlistModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	}
	if err := repo.db.WithContext(ctx).Omit("Product").Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistItem
		}
		if violates(err, constraintWishlistProduct) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	return nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID string, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func (repo *wishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	var rows []*model.WishlistModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Brand").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(rows))
	for _, row := range rows {
		item := &entity.WishlistItem{
			ID:        row.ID,
			UserID:    row.UserID,
			ProductID: row.ProductID,
			AddedAt:   row.AddedAt,
		}
		if row.Product != nil {
			item.Product = toProductDomain(row.Product)
		}
		items = append(items, item)
	}

	return items, nil
}
