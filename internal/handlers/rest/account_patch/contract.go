//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_patch_test
package account_patch

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateAccount(ctx context.Context, id int64, name, phone, password *string) (*entities.Account, error)
}
