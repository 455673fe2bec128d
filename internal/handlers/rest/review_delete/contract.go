//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_delete_test
package review_delete

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
	DeleteReview(ctx context.Context, id int64) error
}
