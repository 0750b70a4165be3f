package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase serves the product catalog. Writes require the admin role.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, sess *entity.Session, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Product, error)
	ListCategories(ctx context.Context, sess *entity.Session) ([]*entity.Category, error)
	ListBrands(ctx context.Context, sess *entity.Session) ([]*entity.Brand, error)
	CreateProduct(ctx context.Context, sess *entity.Session, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sess *entity.Session, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}

// ProductInput is an admin product write. CategoryIDs replaces every category link.
type ProductInput struct {
	Name               string             `json:"name" validate:"required,max=200"`
	Description        string             `json:"description"`
	Price              decimal.Decimal    `json:"price"`
	OriginalPrice      decimal.Decimal    `json:"originalPrice"`
	DiscountPercentage int                `json:"discountPercentage" validate:"min=0,max=100"`
	Stock              int                `json:"stock" validate:"min=0"`
	Active             bool               `json:"active"`
	Carousel           bool               `json:"carousel"`
	IsPromoted         bool               `json:"isPromoted"`
	BrandID            *uuid.UUID         `json:"brandID"`
	Gender             entity.Gender      `json:"gender"`
	Season             entity.Season      `json:"temporada"`
	ProductType        entity.ProductType `json:"tipoProducto"`
	Occasion           entity.Occasion    `json:"ocasion"`
	Material           string             `json:"material"`
	ImageURL           string             `json:"imageUrl"`
	AdditionalImages   []string           `json:"additionalImages"`
	Sizes              []string           `json:"tallas"`
	Colors             []string           `json:"colores"`
	PromotionStartDate *time.Time         `json:"promotionStartDate"`
	PromotionEndDate   *time.Time         `json:"promotionEndDate"`
	PromotionType      string             `json:"promotionType"`
	CategoryIDs        []uuid.UUID        `json:"categoryIDs"`
}
