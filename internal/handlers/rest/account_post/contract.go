//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_post_test
package account_post

import (
	"context"

	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateAccount(ctx context.Context, name, phone, password string) (int64, error)
}
