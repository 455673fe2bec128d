package review

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Review struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Review {
	return &Review{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Review) CreateReview(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error) {
	if reviewModify.CustomerID == nil ||
		reviewModify.CourierID == nil ||
		reviewModify.Score == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidScore(*reviewModify.Score) {
		return nil, ErrInvalidScore
	}

	reviewEntity, err := s.repository.Create(ctx, reviewModify)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return reviewEntity, nil
}

func (s *Review) UpdateReview(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error) {
	if reviewModify.Score == nil && reviewModify.Text == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if reviewModify.Score != nil && !isValidScore(*reviewModify.Score) {
		return nil, ErrInvalidScore
	}

	reviewEntity, err := s.repository.Update(ctx, reviewModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return reviewEntity, nil
}

func (s *Review) GetReview(ctx context.Context, id int64) (*entities.Review, error) {
	reviewEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return reviewEntity, nil
}

func (s *Review) GetReviews(ctx context.Context, skip, limit int64) ([]entities.Review, error) {
	reviews, err := s.repository.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}

func (s *Review) DeleteReview(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
