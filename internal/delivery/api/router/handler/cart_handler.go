package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler reads the stored cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// GetActiveCart returns the active cart with its items.
func (h *CartHandler) GetActiveCart(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetActiveCart(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
