//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_patch_test
package review_patch

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
	UpdateReview(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
}
