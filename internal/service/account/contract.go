//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	GetByPhone(ctx context.Context, phone string) (*entities.Account, error)
	GetAll(ctx context.Context, skip, limit int64) ([]entities.Account, error)
	Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
