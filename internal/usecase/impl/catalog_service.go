package impl

import (
	"context"
	"log/slog"
	"strings"
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

const maxProductPage = 200

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts lists products. Only admins see inactive products.
func (srv *catalogService) ListProducts(ctx context.Context, sess *entity.Session, filter entity.ProductFilter) ([]*entity.Product, error) {
	if err := authorize(sess, schema.ModelProduct, schema.OpRead, false); err != nil {
		return nil, err
	}
	if !sess.IsAdmin {
		filter.ActiveOnly = true
	}
	if filter.Limit <= 0 || filter.Limit > maxProductPage {
		filter.Limit = maxProductPage
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		products, err = factory.CatalogRepo().ListProducts(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Product, error) {
	if err := authorize(sess, schema.ModelProduct, schema.OpRead, false); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		product, err = factory.CatalogRepo().FindProductByID(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}
	if !product.Active && !sess.IsAdmin {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// ListCategories returns the category tree roots; children hang off SubCategories.
func (srv *catalogService) ListCategories(ctx context.Context, sess *entity.Session) ([]*entity.Category, error) {
	if err := authorize(sess, schema.ModelCategory, schema.OpRead, false); err != nil {
		return nil, err
	}

	var categories []*entity.Category
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		categories, err = factory.CatalogRepo().ListCategories(ctx, !sess.IsAdmin)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	roots := make([]*entity.Category, 0, len(categories))
	for _, category := range categories {
		if category.ParentCategoryID == nil {
			roots = append(roots, category)
		}
	}

	return roots, nil
}

func (srv *catalogService) ListBrands(ctx context.Context, sess *entity.Session) ([]*entity.Brand, error) {
	if err := authorize(sess, schema.ModelBrand, schema.OpRead, false); err != nil {
		return nil, err
	}

	var brands []*entity.Brand
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		brands, err = factory.CatalogRepo().ListBrands(ctx, !sess.IsAdmin)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// CreateProduct stores a product and its category links in one transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, sess *entity.Session, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.authorizeWrite(sess, schema.OpCreate); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	product := &entity.Product{CreatedAt: now}
	applyProductInput(product, input, now)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.CatalogRepo()
		if err := repo.CreateProduct(ctx, product); err != nil {
			return err
		}

		return repo.ReplaceProductCategories(ctx, product.ID, product.CategoryIDs)
	})
	if err != nil {
		return nil, srv.writeError(ctx, err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct overwrites a product and replaces its category links.
func (srv *catalogService) UpdateProduct(ctx context.Context, sess *entity.Session, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.authorizeWrite(sess, schema.OpUpdate); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.CatalogRepo()
		existing, err := repo.FindProductByID(ctx, id)
		if err != nil {
			return err
		}
		applyProductInput(existing, input, srv.now().UTC())
		if err := repo.UpdateProduct(ctx, existing); err != nil {
			return err
		}
		if err := repo.ReplaceProductCategories(ctx, existing.ID, existing.CategoryIDs); err != nil {
			return err
		}
		product = existing

		return nil
	})
	if err != nil {
		return nil, srv.writeError(ctx, err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := srv.authorizeWrite(sess, schema.OpDelete); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.CatalogRepo().DeleteProduct(ctx, id)
	})
	if err != nil {
		return srv.writeError(ctx, err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

// authorizeWrite checks both the product and the link model, since every write touches both.
func (srv *catalogService) authorizeWrite(sess *entity.Session, op schema.Operation) error {
	if err := authorize(sess, schema.ModelProduct, op, false); err != nil {
		return err
	}

	return authorize(sess, schema.ModelProductCategory, op, false)
}

func (srv *catalogService) writeError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}
	srv.log(ctx).Error(msg, slog.Any("error", err))

	return errors.Wrap(err, msg)
}

func validateProductInput(input *usecase.ProductInput) error {
	var problems []string
	if strings.TrimSpace(input.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !input.Price.IsPositive() {
		problems = append(problems, "price must be greater than zero")
	}
	if input.OriginalPrice.IsNegative() {
		problems = append(problems, "originalPrice must not be negative")
	}
	if input.Gender != "" && !input.Gender.IsValid() {
		problems = append(problems, "invalid gender "+string(input.Gender))
	}
	if input.Season != "" && !input.Season.IsValid() {
		problems = append(problems, "invalid temporada "+string(input.Season))
	}
	if input.ProductType != "" && !input.ProductType.IsValid() {
		problems = append(problems, "invalid tipoProducto "+string(input.ProductType))
	}
	if input.Occasion != "" && !input.Occasion.IsValid() {
		problems = append(problems, "invalid ocasion "+string(input.Occasion))
	}
	if input.PromotionStartDate != nil && input.PromotionEndDate != nil &&
		input.PromotionEndDate.Before(*input.PromotionStartDate) {
		problems = append(problems, "promotion ends before it starts")
	}
	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput, now time.Time) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	if product.OriginalPrice.IsZero() {
		product.OriginalPrice = input.Price
	}
	product.DiscountPercentage = input.DiscountPercentage
	product.Stock = input.Stock
	product.Active = input.Active
	product.Carousel = input.Carousel
	product.IsPromoted = input.IsPromoted
	product.BrandID = input.BrandID
	product.Brand = nil
	product.Gender = input.Gender
	product.Season = input.Season
	product.ProductType = input.ProductType
	product.Occasion = input.Occasion
	product.Material = input.Material
	product.ImageURL = input.ImageURL
	product.AdditionalImages = input.AdditionalImages
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.PromotionStartDate = input.PromotionStartDate
	product.PromotionEndDate = input.PromotionEndDate
	product.PromotionType = input.PromotionType
	product.CategoryIDs = input.CategoryIDs
	product.Categories = nil
	product.UpdatedAt = now
}
