package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStorageHandler_Upload(t *testing.T) {
	storageUC := mockUC.NewMockStorageUsecase(t)
	storageUC.EXPECT().Upload(mock.Anything, mock.Anything, "order-images/receipt.png", "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Session, key, contentType string, body io.Reader) (*service.ObjectAttributes, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))

			return &service.ObjectAttributes{Key: key, ContentType: contentType, Size: int64(len(data))}, nil
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/files/order-images/receipt.png", strings.NewReader("png-bytes"))
	req.Header.Set(echo.HeaderContentType, "image/png")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues("order-images/receipt.png")
	deliverycontext.SetSession(c, guest())

	require.NoError(t, NewStorageHandler(storageUC).Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{
		"key":         "order-images/receipt.png",
		"contentType": "image/png",
		"size":        float64(9),
	}, decodeData[map[string]any](t, rec))
}

func TestStorageHandler_SignedURL(t *testing.T) {
	storageUC := mockUC.NewMockStorageUsecase(t)
	storageUC.EXPECT().SignedURL(mock.Anything, mock.Anything, "products/blusa.jpg").Return("https://cdn.example.com/products/blusa.jpg?sig=1", nil)

	rec := serve(t, NewStorageHandler(storageUC).SignedURL, testRequest{
		method: http.MethodGet,
		target: "/api/v1/files/products/blusa.jpg",
		params: map[string]string{"*": "products/blusa.jpg"},
		sess:   guest(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.com/products/blusa.jpg?sig=1", decodeData[map[string]string](t, rec)["url"])
}

func TestStorageHandler_Delete(t *testing.T) {
	t.Run("guest denied", func(t *testing.T) {
		storageUC := mockUC.NewMockStorageUsecase(t)
		storageUC.EXPECT().Delete(mock.Anything, mock.Anything, "products/blusa.jpg").Return(domainerrors.ErrUnauthenticated)

		rec := serve(t, NewStorageHandler(storageUC).Delete, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/files/products/blusa.jpg",
			params: map[string]string{"*": "products/blusa.jpg"},
			sess:   guest(),
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		storageUC := mockUC.NewMockStorageUsecase(t)
		storageUC.EXPECT().Delete(mock.Anything, mock.Anything, "products/blusa.jpg").Return(nil)

		rec := serve(t, NewStorageHandler(storageUC).Delete, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/files/products/blusa.jpg",
			params: map[string]string{"*": "products/blusa.jpg"},
			sess:   admin(),
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
