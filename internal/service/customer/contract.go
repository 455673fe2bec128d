//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Customer, error)
	GetByAccountID(ctx context.Context, accountID int64) (*entities.Customer, error)
	GetAll(ctx context.Context, skip, limit int64) ([]entities.Customer, error)
	Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
