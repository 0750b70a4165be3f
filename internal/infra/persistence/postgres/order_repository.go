package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultOrderPageSize = 50

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns an OrderRepository backed by GORM.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate order id")
		}
		order.ID = id
	}

	row := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
	order.CreatedAt = row.CreatedAt
	order.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&row), nil
}

// ListByEmail matches both the account email and the checkout email.
func (repo *orderRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	var rows []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_email = ? OR email = ?", email, email).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders by email")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}

	var rows []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(max(offset, 0)).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	row := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}
	order.UpdatedAt = row.UpdatedAt

	return nil
}

func toOrdersDomain(rows []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		DocumentType:    data.DocumentType,
		DocumentNumber:  data.DocumentNumber,
		Phone:           data.Phone,
		ShippingMethod:  data.ShippingMethod,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingState:   data.ShippingState,
		ShippingZip:     data.ShippingZip,
		InvoiceType:     data.InvoiceType,
		Items:           data.Items,
		UserEmail:       data.UserEmail,
		Subtotal:        data.Subtotal,
		Shipping:        data.Shipping,
		Tax:             data.Tax,
		Discount:        data.Discount,
		Total:           data.Total,
		Status:          entity.OrderStatus(data.Status),
		TrackingNumber:  data.TrackingNumber,
		TrackingURL:     data.TrackingURL,
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentLink:     data.LinkPago,
		PaymentShort:    data.LinkShort,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		DocumentType:    data.DocumentType,
		DocumentNumber:  data.DocumentNumber,
		Phone:           data.Phone,
		ShippingMethod:  data.ShippingMethod,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingState:   data.ShippingState,
		ShippingZip:     data.ShippingZip,
		InvoiceType:     data.InvoiceType,
		Items:           data.Items,
		UserEmail:       data.UserEmail,
		Subtotal:        data.Subtotal,
		Shipping:        data.Shipping,
		Tax:             data.Tax,
		Discount:        data.Discount,
		Total:           data.Total,
		Status:          string(data.Status),
		TrackingNumber:  data.TrackingNumber,
		TrackingURL:     data.TrackingURL,
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   string(data.PaymentStatus),
		LinkPago:        data.PaymentLink,
		LinkShort:       data.PaymentShort,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
