package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ToastHandler queues transient notifications on the browser session.
type ToastHandler struct {
	toastUC usecase.ToastUsecase
}

// NewToastHandler is the constructor for ToastHandler
func NewToastHandler(toastUC usecase.ToastUsecase) *ToastHandler {
	return &ToastHandler{toastUC: toastUC}
}

// List returns the pending toasts, dropping expired ones.
func (h *ToastHandler) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.toastUC.List(sess))
}

// Show queues a toast.
func (h *ToastHandler) Show(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.ToastInput
	if handled, err := bind(c, &req, "toast"); handled {
		return err
	}

	return response.Success(c, http.StatusCreated, h.toastUC.Show(sess, &req))
}

// Remove drops a toast by id.
func (h *ToastHandler) Remove(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.FromAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid id"))
	}

	if !h.toastUC.Remove(sess, id) {
		return response.FromAppError(c, domainerrors.ErrNotFound.WithDetails("toast "+c.Param("id")))
	}

	return c.NoContent(http.StatusNoContent)
}
