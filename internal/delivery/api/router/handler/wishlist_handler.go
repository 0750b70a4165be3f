package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WishlistHandler manages product bookmarks.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(wishlistUC usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: wishlistUC}
}

// AddWishlistRequest bookmarks a product.
type AddWishlistRequest struct {
	ProductID uuid.UUID `json:"productID" validate:"required"`
}

// List returns the bookmarks of the signed-in customer.
func (h *WishlistHandler) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	items, err := h.wishlistUC.List(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Add bookmarks a product.
func (h *WishlistHandler) Add(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req AddWishlistRequest
	if handled, err := bind(c, &req, "wishlist"); handled {
		return err
	}

	item, err := h.wishlistUC.Add(c.Request().Context(), sess, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// Remove drops a bookmark by product id.
func (h *WishlistHandler) Remove(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishlistUC.Remove(c.Request().Context(), sess, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
