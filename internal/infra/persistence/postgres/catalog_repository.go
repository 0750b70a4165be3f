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

const defaultProductPageSize = 50

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository returns a CatalogRepository backed by GORM.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) productQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories.Category")
}

// ListProducts applies the filter and returns products newest first.
func (repo *catalogRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.productQuery(ctx).Model(&model.ProductModel{})

	if filter.CategoryID != nil {
		query = query.Where("products.id IN (?)",
			repo.db.Model(&model.ProductCategoryModel{}).
				Select("product_id").
				Where("category_id = ?", *filter.CategoryID),
		)
	}
	if filter.BrandID != nil {
		query = query.Where("products.brand_id = ?", *filter.BrandID)
	}
	if filter.Gender != "" {
		query = query.Where("products.gender = ?", string(filter.Gender))
	}
	if filter.ProductType != "" {
		query = query.Where("products.tipo_producto = ?", string(filter.ProductType))
	}
	if filter.Promoted != nil {
		query = query.Where("products.is_promoted = ?", *filter.Promoted)
	}
	if filter.Carousel != nil {
		query = query.Where("products.carousel = ?", *filter.Carousel)
	}
	if filter.ActiveOnly {
		query = query.Where("products.active = ?", true)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProductPageSize
	}

	var rows []*model.ProductModel
	err := query.
		Order("products.created_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	if err := repo.productQuery(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&row), nil
}

func (repo *catalogRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var rows []*model.ProductModel
	if err := repo.productQuery(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products by ids")
	}

	return toProductsDomain(rows), nil
}

func (repo *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate product id")
		}
		product.ID = id
	}

	row := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Omit("Brand", "Categories").Create(row).Error; err != nil {
		if violates(err, constraintProductBrand) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown brand reference")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "created_at", "Brand", "Categories").
		Updates(row)
	if result.Error != nil {
		if violates(result.Error, constraintProductBrand) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}
	product.UpdatedAt = row.UpdatedAt

	return nil
}

// DeleteProduct removes the product and its category links.
func (repo *catalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("product_id = ?", id).Delete(&model.ProductCategoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product categories")
	}

	result := db.Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if violates(result.Error, constraintCartItemProduct, constraintWishlistProduct) {
			return domainerrors.ErrConflict.WrapMessage("product is referenced by carts or wishlists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *catalogRepository) ReplaceProductCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductCategoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product categories")
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]*model.ProductCategoryModel, 0, len(categoryIDs))
	seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		if _, dup := seen[categoryID]; dup {
			continue
		}
		seen[categoryID] = struct{}{}

		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate product category id")
		}
		links = append(links, &model.ProductCategoryModel{ID: id, ProductID: productID, CategoryID: categoryID})
	}

	if err := db.Omit("Category").Create(&links).Error; err != nil {
		if violates(err, constraintCategoryLink) {
			return repository.ErrCategoryNotFound
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link product categories")
	}

	return nil
}

// ListCategories returns categories ordered for display with children attached to their parents.
// The returned slice holds every category; roots and children alike.
func (repo *catalogRepository) ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []*model.CategoryModel
	if err := query.Order("orden_visualizacion ASC").Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	byID := make(map[uuid.UUID]*entity.Category, len(rows))
	for _, row := range rows {
		category := toCategoryDomain(row)
		categories = append(categories, category)
		byID[category.ID] = category
	}
	for _, category := range categories {
		if category.ParentCategoryID == nil {
			continue
		}
		if parent, ok := byID[*category.ParentCategoryID]; ok {
			parent.SubCategories = append(parent.SubCategories, category)
		}
	}

	return categories, nil
}

func (repo *catalogRepository) ListBrands(ctx context.Context, activeOnly bool) ([]*entity.Brand, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []*model.BrandModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(rows))
	for _, row := range rows {
		brands = append(brands, toBrandDomain(row))
	}

	return brands, nil
}

func toProductsDomain(rows []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		Stock:              data.Stock,
		Active:             data.Active,
		Carousel:           data.Carousel,
		IsPromoted:         data.IsPromoted,
		BrandID:            data.BrandID,
		Gender:             entity.Gender(data.Gender),
		Season:             entity.Season(data.Temporada),
		ProductType:        entity.ProductType(data.TipoProducto),
		Occasion:           entity.Occasion(data.Ocasion),
		Material:           data.Material,
		ImageURL:           data.ImageURL,
		AdditionalImages:   data.AdditionalImages,
		Sizes:              data.Tallas,
		Colors:             data.Colores,
		PromotionStartDate: data.PromotionStartDate,
		PromotionEndDate:   data.PromotionEndDate,
		PromotionType:      data.PromotionType,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if data.Brand != nil {
		product.Brand = toBrandDomain(data.Brand)
	}
	for _, link := range data.Categories {
		product.CategoryIDs = append(product.CategoryIDs, link.CategoryID)
		if link.Category != nil {
			product.Categories = append(product.Categories, toCategoryDomain(link.Category))
		}
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		Stock:              data.Stock,
		Active:             data.Active,
		Carousel:           data.Carousel,
		IsPromoted:         data.IsPromoted,
		BrandID:            data.BrandID,
		Gender:             string(data.Gender),
		Temporada:          string(data.Season),
		TipoProducto:       string(data.ProductType),
		Ocasion:            string(data.Occasion),
		Material:           data.Material,
		ImageURL:           data.ImageURL,
		AdditionalImages:   data.AdditionalImages,
		Tallas:             data.Sizes,
		Colores:            data.Colors,
		PromotionStartDate: data.PromotionStartDate,
		PromotionEndDate:   data.PromotionEndDate,
		PromotionType:      data.PromotionType,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Active:           data.Active,
		Type:             entity.CategoryType(data.Tipo),
		ParentCategoryID: data.ParentCategoryID,
		DisplayOrder:     data.OrdenVisual,
		ImageURL:         data.ImageURL,
		IsFeatured:       data.EsDestacado,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Active:      data.Active,
		Country:     data.Country,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
