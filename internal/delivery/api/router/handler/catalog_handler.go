package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultProductPage = 24

// CatalogHandler serves products, categories and brands.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListProducts handles GET /products with optional filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	filter, err := productFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), sess, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func productFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Gender:      entity.Gender(c.QueryParam("gender")),
		ProductType: entity.ProductType(c.QueryParam("tipoProducto")),
	}
	if filter.Gender != "" && !filter.Gender.IsValid() {
		return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid gender"))
	}
	if filter.ProductType != "" && !filter.ProductType.IsValid() {
		return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid tipoProducto"))
	}

	for name, target := range map[string]**uuid.UUID{
		"categoryId": &filter.CategoryID,
		"brandId":    &filter.BrandID,
	} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
		}
		*target = &id
	}

	var err error
	if filter.Promoted, err = boolQuery(c, "promoted"); err != nil {
		return filter, err
	}
	if filter.Carousel, err = boolQuery(c, "carousel"); err != nil {
		return filter, err
	}
	if filter.Limit, err = intQuery(c, "limit", defaultProductPage); err != nil {
		return filter, err
	}
	if filter.Offset, err = intQuery(c, "offset", 0); err != nil {
		return filter, err
	}

	return filter, nil
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), sess, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories returns the category tree roots with their children.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListBrands returns every brand.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	brands, err := h.catalogUC.ListBrands(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// CreateProduct is an admin product write.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if handled, err := bind(c, &req, "product"); handled {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct replaces a product and its category links.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.ProductInput
	if handled, err := bind(c, &req, "product"); handled {
		return err
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), sess, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), sess, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
