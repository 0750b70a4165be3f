package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	categoryID := uuid.New()
	promoted := true

	t.Run("filters from query", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().ListProducts(mock.Anything, mock.Anything, entity.ProductFilter{
			CategoryID:  &categoryID,
			Gender:      entity.Gender("mujer"),
			ProductType: "",
			Promoted:    &promoted,
			Limit:       10,
			Offset:      20,
		}).Return([]*entity.Product{{ID: uuid.New(), Name: "Blusa", Price: decimal.RequireFromString("59.90")}}, nil)

		rec := serve(t, NewCatalogHandler(catalogUC).ListProducts, testRequest{
			method: http.MethodGet,
			target: "/api/v1/products?categoryId=" + categoryID.String() + "&gender=mujer&promoted=true&limit=10&offset=20",
			sess:   guest(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		products := decodeData[[]entity.Product](t, rec)
		require.Len(t, products, 1)
		assert.Equal(t, "Blusa", products[0].Name)
		assert.True(t, decimal.RequireFromString("59.90").Equal(products[0].Price))
	})

	t.Run("default page size", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().ListProducts(mock.Anything, mock.Anything, entity.ProductFilter{Limit: defaultProductPage}).Return([]*entity.Product{}, nil)

		rec := serve(t, NewCatalogHandler(catalogUC).ListProducts, testRequest{method: http.MethodGet, target: "/api/v1/products", sess: guest()})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	invalid := []string{
		"/api/v1/products?gender=unisex-ish",
		"/api/v1/products?tipoProducto=spaceship",
		"/api/v1/products?brandId=nope",
		"/api/v1/products?carousel=maybe",
		"/api/v1/products?limit=ten",
	}
	for _, target := range invalid {
		t.Run("rejects "+target, func(t *testing.T) {
			rec := serve(t, NewCatalogHandler(mockUC.NewMockCatalogUsecase(t)).ListProducts, testRequest{
				method: http.MethodGet,
				target: target,
				sess:   guest(),
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		rec := serve(t, NewCatalogHandler(mockUC.NewMockCatalogUsecase(t)).GetProduct, testRequest{
			method: http.MethodGet,
			target: "/api/v1/products/abc",
			params: map[string]string{"id": "abc"},
			sess:   guest(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

		rec := serve(t, NewCatalogHandler(catalogUC).GetProduct, testRequest{
			method: http.MethodGet,
			target: "/api/v1/products/" + id.String(),
			params: map[string]string{"id": id.String()},
			sess:   guest(),
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestCatalogHandler_ListCategoriesAndBrands(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	catalogUC.EXPECT().ListCategories(mock.Anything, mock.Anything).Return([]*entity.Category{{ID: uuid.New(), Name: "Mujer"}}, nil)
	catalogUC.EXPECT().ListBrands(mock.Anything, mock.Anything).Return([]*entity.Brand{{ID: uuid.New(), Name: "Chic"}}, nil)
	h := NewCatalogHandler(catalogUC)

	rec := serve(t, h.ListCategories, testRequest{method: http.MethodGet, target: "/api/v1/categories", sess: guest()})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mujer", decodeData[[]entity.Category](t, rec)[0].Name)

	rec = serve(t, h.ListBrands, testRequest{method: http.MethodGet, target: "/api/v1/brands", sess: guest()})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chic", decodeData[[]entity.Brand](t, rec)[0].Name)
}

func TestCatalogHandler_AdminWrites(t *testing.T) {
	id := uuid.New()

	t.Run("create", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().CreateProduct(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Name == "Blusa" && in.Price.Equal(decimal.RequireFromString("59.9")) && in.Gender == "mujer"
		})).Return(&entity.Product{ID: id, Name: "Blusa"}, nil)

		rec := serve(t, NewCatalogHandler(catalogUC).CreateProduct, testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/products",
			body:   `{"name":"Blusa","price":"59.9","gender":"mujer","stock":3}`,
			sess:   admin(),
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, id, decodeData[entity.Product](t, rec).ID)
	})

	t.Run("create without name", func(t *testing.T) {
		rec := serve(t, NewCatalogHandler(mockUC.NewMockCatalogUsecase(t)).CreateProduct, testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/products",
			body:   `{"price":"59.9"}`,
			sess:   admin(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().UpdateProduct(mock.Anything, mock.Anything, id, mock.Anything).Return(&entity.Product{ID: id, Name: "Blusa"}, nil)

		rec := serve(t, NewCatalogHandler(catalogUC).UpdateProduct, testRequest{
			method: http.MethodPut,
			target: "/api/v1/admin/products/" + id.String(),
			body:   `{"name":"Blusa","price":"49.9"}`,
			params: map[string]string{"id": id.String()},
			sess:   admin(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().DeleteProduct(mock.Anything, mock.Anything, id).Return(nil)

		rec := serve(t, NewCatalogHandler(catalogUC).DeleteProduct, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/admin/products/" + id.String(),
			params: map[string]string{"id": id.String()},
			sess:   admin(),
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forbidden for customers", func(t *testing.T) {
		catalogUC := mockUC.NewMockCatalogUsecase(t)
		catalogUC.EXPECT().DeleteProduct(mock.Anything, mock.Anything, id).Return(domainerrors.ErrForbidden)

		rec := serve(t, NewCatalogHandler(catalogUC).DeleteProduct, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/admin/products/" + id.String(),
			params: map[string]string{"id": id.String()},
			sess:   customer(),
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
