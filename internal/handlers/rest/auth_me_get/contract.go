//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_me_get_test
package auth_me_get

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

type Identity interface {
	AccountID(authorization string) (int64, error)
	CustomerID(ctx context.Context, authorization string) (int64, error)
	CourierID(ctx context.Context, authorization string) (int64, error)
}
