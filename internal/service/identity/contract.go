//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
package identity

import (
	"context"

	"marketplace/internal/entities"
)

type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type CustomerRepository interface {
	GetByAccountID(ctx context.Context, accountID int64) (*entities.Customer, error)
}

type CourierRepository interface {
	GetByAccountID(ctx context.Context, accountID int64) (*entities.Courier, error)
}
