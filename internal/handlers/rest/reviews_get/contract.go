//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reviews_get_test
package reviews_get

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
	GetReviews(ctx context.Context, skip, limit int64) ([]entities.Review, error)
}
