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
)

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mockUC.MockOrderUsecase) {
	t.Helper()

	orderUC := mockUC.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: discardLogger()}), orderUC
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	productID := uuid.New()
	body := `{
		"firstName":"Ana","lastName":"Torres","email":"ana@example.com",
		"shippingAddress":"Av. Larco 123","shippingCity":"Lima","shipping":"10.00",
		"items":[{"productID":"` + productID.String() + `","quantity":2,"size":"M"}]
	}`

	t.Run("guest checkout", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderID := uuid.New()
		orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return len(in.Items) == 1 && in.Items[0].ProductID == productID && in.Items[0].Quantity == 2 &&
				in.Shipping.Equal(decimal.NewFromInt(10))
		})).Return(&entity.Order{
			ID:            orderID,
			Status:        entity.OrderPending,
			PaymentStatus: entity.PaymentPending,
			Total:         decimal.RequireFromString("129.80"),
		}, nil)

		rec := serve(t, h.PlaceOrder, testRequest{method: http.MethodPost, target: "/api/v1/orders", body: body, sess: guest()})

		assert.Equal(t, http.StatusCreated, rec.Code)
		order := decodeData[entity.Order](t, rec)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, entity.OrderPending, order.Status)
		assert.Contains(t, rec.Body.String(), `"total":"129.8"`)
	})

	t.Run("empty cart", func(t *testing.T) {
		h, _ := createTestOrderHandler(t)

		rec := serve(t, h.PlaceOrder, testRequest{
			method: http.MethodPost,
			target: "/api/v1/orders",
			body:   `{"firstName":"Ana","lastName":"Torres","email":"ana@example.com","shippingAddress":"x","shippingCity":"Lima","items":[]}`,
			sess:   guest(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"items": "min=1"}, decodeError(t, rec).Details)
	})

	t.Run("unknown product", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrProductNotFound.WithDetails(productID.String()))

		rec := serve(t, h.PlaceOrder, testRequest{method: http.MethodPost, target: "/api/v1/orders", body: body, sess: guest()})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, productID.String(), decodeError(t, rec).Details)
	})
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)
	orderUC.EXPECT().ListMyOrders(mock.Anything, mock.Anything).Return([]*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec := serve(t, h.ListMyOrders, testRequest{method: http.MethodGet, target: "/api/v1/orders/mine", sess: customer()})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Order](t, rec), 2)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	id := uuid.New()
	h, orderUC := createTestOrderHandler(t)
	orderUC.EXPECT().GetOrder(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrOrderNotFound)

	rec := serve(t, h.GetOrder, testRequest{
		method: http.MethodGet,
		target: "/api/v1/orders/" + id.String(),
		params: map[string]string{"id": id.String()},
		sess:   guest(),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestOrderHandler_PaymentQR(t *testing.T) {
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("png", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().PaymentQR(mock.Anything, mock.Anything, id).Return(png, nil)

		rec := serve(t, h.PaymentQR, testRequest{
			method: http.MethodGet,
			target: "/api/v1/orders/" + id.String() + "/payment-qr",
			params: map[string]string{"id": id.String()},
			sess:   guest(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("no payment link", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().PaymentQR(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrNoPaymentLink)

		rec := serve(t, h.PaymentQR, testRequest{
			method: http.MethodGet,
			target: "/api/v1/orders/" + id.String() + "/payment-qr",
			params: map[string]string{"id": id.String()},
			sess:   guest(),
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NO_PAYMENT_LINK", decodeError(t, rec).Code)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("paging", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().ListOrders(mock.Anything, mock.Anything, 20, 40).Return([]*entity.Order{}, nil)

		rec := serve(t, h.ListOrders, testRequest{method: http.MethodGet, target: "/api/v1/admin/orders?limit=20&offset=40", sess: admin()})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("defaults", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().ListOrders(mock.Anything, mock.Anything, defaultOrderPage, 0).Return([]*entity.Order{}, nil)

		rec := serve(t, h.ListOrders, testRequest{method: http.MethodGet, target: "/api/v1/admin/orders", sess: admin()})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateOrderStatusInput) bool {
			return in.Status == entity.OrderShipped && in.TrackingNumber != nil && *in.TrackingNumber == "TRK-1"
		})).Return(&entity.Order{ID: id, Status: entity.OrderShipped, PaymentStatus: entity.PaymentPaid}, nil)

		rec := serve(t, h.UpdateOrderStatus, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/admin/orders/" + id.String() + "/status",
			body:   `{"status":"shipped","trackingNumber":"TRK-1"}`,
			params: map[string]string{"id": id.String()},
			sess:   admin(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.OrderShipped, decodeData[entity.Order](t, rec).Status)
	})

	t.Run("invalid tracking url", func(t *testing.T) {
		h, _ := createTestOrderHandler(t)

		rec := serve(t, h.UpdateOrderStatus, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/admin/orders/" + id.String() + "/status",
			body:   `{"trackingUrl":"not a url"}`,
			params: map[string]string{"id": id.String()},
			sess:   admin(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"trackingUrl": "url"}, decodeError(t, rec).Details)
	})
}
