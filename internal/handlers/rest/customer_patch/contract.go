//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_patch_test
package customer_patch

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
	UpdateCustomer(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
}
