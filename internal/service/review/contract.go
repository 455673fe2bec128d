//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
	GetByID(ctx context.Context, id int64) (*entities.Review, error)
	GetAll(ctx context.Context, skip, limit int64) ([]entities.Review, error)
	Update(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
	Delete(ctx context.Context, id int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
