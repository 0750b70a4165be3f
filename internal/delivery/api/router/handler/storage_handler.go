package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StorageHandler exposes the image bucket under /files/<key>.
type StorageHandler struct {
	storageUC usecase.StorageUsecase
}

// NewStorageHandler is the constructor for StorageHandler
func NewStorageHandler(storageUC usecase.StorageUsecase) *StorageHandler {
	return &StorageHandler{storageUC: storageUC}
}

// Upload stores the raw request body under the key in the path.
func (h *StorageHandler) Upload(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	req := c.Request()
	attrs, err := h.storageUC.Upload(req.Context(), sess, c.Param("*"), req.Header.Get(echo.HeaderContentType), req.Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"key":         attrs.Key,
		"contentType": attrs.ContentType,
		"size":        attrs.Size,
	})
}

// SignedURL returns a time-limited download URL.
func (h *StorageHandler) SignedURL(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	url, err := h.storageUC.SignedURL(c.Request().Context(), sess, c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// Delete removes an object.
func (h *StorageHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.storageUC.Delete(c.Request().Context(), sess, c.Param("*")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
