package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)

// CatalogRepository reads and maintains products, categories and brands.
type CatalogRepository interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindProductByID loads a product with its brand and categories.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs loads products in bulk; missing ids are skipped.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ReplaceProductCategories rewrites the ProductCategory links of a product.
	ReplaceProductCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error

	// ListCategories returns categories ordered by display order.
	ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	ListBrands(ctx context.Context, activeOnly bool) ([]*entity.Brand, error)
}
