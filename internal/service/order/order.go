package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
)

type Order struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(repository Repository, publisher EventPublisher, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// CreateOrder places a new order. The owning CustomerID must already be the
// caller's resolved customer identity; the HTTP layer never passes through a
// client-supplied one. Orders are always created unassigned.
func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.WhereTo == nil ||
		orderModify.WhereFrom == nil ||
		orderModify.Price == nil ||
		orderModify.DateWhen == nil ||
		orderModify.CustomerID == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidAddress(*orderModify.WhereTo) {
		return nil, ErrInvalidWhereTo
	}
	if !isValidAddress(*orderModify.WhereFrom) {
		return nil, ErrInvalidWhereFrom
	}
	if !isValidPrice(*orderModify.Price) {
		return nil, ErrInvalidPrice
	}

	orderModify.WhereTo = pointer.To(strings.TrimSpace(*orderModify.WhereTo))
	orderModify.WhereFrom = pointer.To(strings.TrimSpace(*orderModify.WhereFrom))

	// Status is an open string: any value passes, absent means "new".
	if orderModify.Status == nil {
		orderModify.Status = pointer.To(entities.DefaultOrderStatus)
	}
	orderModify.CourierID = nil

	orderEntity, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return orderEntity, nil
}

// UpdateOrder applies a partial update within one unit of work. There is no
// optimistic-concurrency token: two concurrent updates both succeed and the
// later commit wins.
func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if orderModify.WhereTo == nil &&
		orderModify.WhereFrom == nil &&
		orderModify.Price == nil &&
		orderModify.Status == nil &&
		orderModify.DateWhen == nil &&
		orderModify.CourierID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if orderModify.WhereTo != nil && !isValidAddress(*orderModify.WhereTo) {
		return nil, ErrInvalidWhereTo
	}
	if orderModify.WhereFrom != nil && !isValidAddress(*orderModify.WhereFrom) {
		return nil, ErrInvalidWhereFrom
	}
	if orderModify.Price != nil && !isValidPrice(*orderModify.Price) {
		return nil, ErrInvalidPrice
	}

	var (
		updated        *entities.Order
		previousStatus string
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		previousStatus = current.Status

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != previousStatus {
		s.publisher.PublishOrderStatusChanged(ctx, *updated, previousStatus)
	}

	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) GetOrders(ctx context.Context, skip, limit int64) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
