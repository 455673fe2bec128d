//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, skip, limit int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
}

// EventPublisher announces status transitions to interested consumers.
// Publishing is best-effort: implementations log their own failures and
// never fail the originating request.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, orderEntity entities.Order, previousStatus string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
