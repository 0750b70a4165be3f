package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/schema"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxOrderPage = 100

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		publisher: params.EventPublisher,
		qrCode:    params.QRCodeService,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the requested lines from the catalog and stores a pending order.
// Guests may order; a signed-in customer's account email is attached.
func (srv *orderService) PlaceOrder(ctx context.Context, sess *entity.Session, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := authorize(sess, schema.ModelOrder, schema.OpCreate, false); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order has no items")
	}
	if input.Shipping.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping must not be negative")
	}

	now := srv.now().UTC()
	order := &entity.Order{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Email:           strings.TrimSpace(input.Email),
		DocumentType:    input.DocumentType,
		DocumentNumber:  input.DocumentNumber,
		Phone:           input.Phone,
		ShippingMethod:  input.ShippingMethod,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingState:   input.ShippingState,
		ShippingZip:     input.ShippingZip,
		InvoiceType:     input.InvoiceType,
		PaymentMethod:   input.PaymentMethod,
		Shipping:        input.Shipping,
		Status:          entity.OrderPending,
		PaymentStatus:   entity.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if sess.IsAuthenticated() {
		order.UserEmail = sess.UserEmail()
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ids := make([]uuid.UUID, 0, len(input.Items))
		for _, line := range input.Items {
			ids = append(ids, line.ProductID)
		}
		products, err := factory.CatalogRepo().FindProductsByIDs(ctx, ids)
		if err != nil {
			return err
		}

		items, err := priceLines(input.Items, products)
		if err != nil {
			return err
		}
		order.Items = items
		order.ComputeTotals()

		return factory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)
	sess.RememberOrder(order.ID)
	srv.publish(ctx, constants.OrderEventPlaced, order)

	return order, nil
}

// priceLines builds order items from the catalog. Client-sent prices are never trusted.
func priceLines(lines []usecase.OrderLineInput, products []*entity.Product) ([]entity.OrderItem, error) {
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	requested := make(map[uuid.UUID]int, len(lines))
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
		product, ok := byID[line.ProductID]
		if !ok || !product.Active {
			return nil, domainerrors.ErrProductNotFound.WithDetails(line.ProductID.String())
		}
		requested[product.ID] += line.Quantity
		if !product.InStock(requested[product.ID]) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("only %d units of %s in stock", product.Stock, product.Name))
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Size:      line.Size,
			Color:     line.Color,
			ImageURL:  product.ImageURL,
		})
	}

	return items, nil
}

// ListMyOrders lists the orders placed with the signed-in customer's email.
func (srv *orderService) ListMyOrders(ctx context.Context, sess *entity.Session) ([]*entity.Order, error) {
	if !sess.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := authorize(sess, schema.ModelOrder, schema.OpRead, true); err != nil {
		return nil, err
	}
	email := sess.UserEmail()
	if email == "" {
		return []*entity.Order{}, nil
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		orders, err = factory.OrderRepo().ListByEmail(ctx, email)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Order, error) {
	return srv.readableOrder(ctx, sess, id)
}

// ListOrders pages through every order. Admin only.
func (srv *orderService) ListOrders(ctx context.Context, sess *entity.Session, limit, offset int) ([]*entity.Order, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxOrderPage {
		limit = maxOrderPage
	}
	if offset < 0 {
		offset = 0
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		orders, err = factory.OrderRepo().ListAll(ctx, limit, offset)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies an admin fulfilment update and announces status changes.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, sess *entity.Session, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if err := authorize(sess, schema.ModelOrder, schema.OpUpdate, false); err != nil {
		return nil, err
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid status " + string(input.Status))
	}
	if input.PaymentStatus != "" && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid paymentStatus " + string(input.PaymentStatus))
	}

	var (
		order   *entity.Order
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.OrderRepo()
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Status != "" && input.Status != existing.Status {
			existing.Status = input.Status
			changed = true
		}
		if input.PaymentStatus != "" && input.PaymentStatus != existing.PaymentStatus {
			existing.PaymentStatus = input.PaymentStatus
			changed = true
		}
		if input.TrackingNumber != nil {
			existing.TrackingNumber = strings.TrimSpace(*input.TrackingNumber)
		}
		if input.TrackingURL != nil {
			existing.TrackingURL = strings.TrimSpace(*input.TrackingURL)
		}
		if input.PaymentLink != nil {
			existing.PaymentLink = strings.TrimSpace(*input.PaymentLink)
		}
		if input.PaymentShort != nil {
			existing.PaymentShort = strings.TrimSpace(*input.PaymentShort)
		}
		existing.UpdatedAt = srv.now().UTC()

		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		order = existing

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	if changed {
		srv.publish(ctx, constants.OrderEventStatusChanged, order)
	}

	return order, nil
}

// PaymentQR renders the order's payment link as a PNG QR code.
func (srv *orderService) PaymentQR(ctx context.Context, sess *entity.Session, id uuid.UUID) ([]byte, error) {
	order, err := srv.readableOrder(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	link := order.PaymentLink
	if link == "" {
		link = order.PaymentShort
	}
	if link == "" {
		return nil, domainerrors.ErrNoPaymentLink
	}

	png, err := srv.qrCode.GeneratePaymentQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}

// readableOrder loads an order the session may see. Admins see every order;
// anyone else only orders placed from this browser or under the signed-in
// email. Other orders read as missing.
func (srv *orderService) readableOrder(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Order, error) {
	if err := authorize(sess, schema.ModelOrder, schema.OpRead, false); err != nil {
		return nil, err
	}

	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case sess.Role() == entity.RoleAdmin,
		sess.PlacedOrder(order.ID),
		sess.IsAuthenticated() && order.BelongsTo(sess.UserEmail()):
		return order, nil
	default:
		return nil, domainerrors.ErrOrderNotFound
	}
}

func (srv *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		order, err = factory.OrderRepo().FindByID(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// publish announces an order event. The order is already committed, so a
// publish failure is logged and not returned.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	email := order.UserEmail
	if email == "" {
		email = order.Email
	}
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.Total.StringFixed(2),
		Email:         email,
		CustomerName:  strings.TrimSpace(order.FirstName + " " + order.LastName),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
