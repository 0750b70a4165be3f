package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultOrderPage = 50

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order tracking and admin fulfilment.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrder handles checkout for guests and customers.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.PlaceOrderInput
	if handled, err := bind(c, &req, "order"); handled {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListMyOrders lists orders placed with the signed-in email.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), sess, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PaymentQR renders the payment link of an order as a PNG QR code.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.PaymentQR(c.Request().Context(), sess, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListOrders is the admin order list.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	limit, err := intQuery(c, "limit", defaultOrderPage)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), sess, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus is the admin fulfilment update.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdateOrderStatusInput
	if handled, err := bind(c, &req, "order status"); handled {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), sess, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
		slog.String("payment_status", string(order.PaymentStatus)),
	)

	return response.Success(c, http.StatusOK, order)
}
