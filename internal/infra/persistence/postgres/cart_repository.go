package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository returns a CartRepository backed by GORM.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindActiveByUser returns the most recently updated active cart of the user.
func (repo *cartRepository) FindActiveByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	var row model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at ASC") }).
		Preload("Items.Product").
		Where("user_id = ? AND status = ?", userID, string(entity.CartActive)).
		Order("updated_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find active cart")
	}

	return toCartDomain(&row), nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	cart := &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.CartStatus(data.Status),
		Subtotal:  data.Subtotal,
		Total:     data.Total,
		Items:     make([]*entity.CartItem, 0, len(data.Items)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for i := range data.Items {
		item := &data.Items[i]
		domainItem := &entity.CartItem{
			ID:                 item.ID,
			CartID:             item.CartID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			Size:               item.Size,
			Color:              item.Color,
			VariationID:        item.VariationID,
			Price:              item.Price,
			OriginalPrice:      item.OriginalPrice,
			DiscountPercentage: item.DiscountPercentage,
			IsPromoted:         item.IsPromoted,
		}
		if item.Product != nil {
			domainItem.Product = toProductDomain(item.Product)
		}
		cart.Items = append(cart.Items, domainItem)
	}

	return cart
}
