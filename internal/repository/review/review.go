package review

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/review"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)
	query := `INSERT INTO reviews (customer_id, courier_id, score, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, customer_id, courier_id, score, text, created_at, updated_at`

	var reviewModel ReviewDB
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewModifyModel.CustomerID,
		reviewModifyModel.CourierID,
		reviewModifyModel.Score,
		reviewModifyModel.Text,
	).Scan(
		&reviewModel.ID,
		&reviewModel.CustomerID,
		&reviewModel.CourierID,
		&reviewModel.Score,
		&reviewModel.Text,
		&reviewModel.CreatedAt,
		&reviewModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, review.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) Update(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)

	builder := qb.
		Update("reviews")

	if reviewModifyModel.Score != nil {
		builder = builder.Set("score", reviewModifyModel.Score)
	}
	if reviewModifyModel.Text != nil {
		builder = builder.Set("text", reviewModifyModel.Text)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": reviewModifyModel.ID}).
		Suffix("RETURNING id, customer_id, courier_id, score, text, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository update error: %w", err)
	}

	var reviewModel ReviewDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&reviewModel.ID,
			&reviewModel.CustomerID,
			&reviewModel.CourierID,
			&reviewModel.Score,
			&reviewModel.Text,
			&reviewModel.CreatedAt,
			&reviewModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}

		return nil, fmt.Errorf("unexpected review repository update error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Review, error) {
	query := `SELECT id, customer_id, courier_id, score, text, created_at, updated_at
		FROM reviews
		WHERE id = $1`

	var reviewModel ReviewDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&reviewModel.ID,
			&reviewModel.CustomerID,
			&reviewModel.CourierID,
			&reviewModel.Score,
			&reviewModel.Text,
			&reviewModel.CreatedAt,
			&reviewModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}

		return nil, fmt.Errorf("unexpected review repository getbyid error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) GetAll(ctx context.Context, skip, limit int64) ([]entities.Review, error) {
	query := `
	SELECT id, customer_id, courier_id, score, text, created_at, updated_at
	FROM reviews
	ORDER BY id
	LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getall error: %w", err)
	}
	defer rows.Close()

	reviewModels := make([]ReviewDB, 0, 8)
	for rows.Next() {
		var reviewModel ReviewDB
		err := rows.Scan(
			&reviewModel.ID,
			&reviewModel.CustomerID,
			&reviewModel.CourierID,
			&reviewModel.Score,
			&reviewModel.Text,
			&reviewModel.CreatedAt,
			&reviewModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository getall error: %w", err)
		}
		reviewModels = append(reviewModels, reviewModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getall error: %w", err)
	}

	return ToDomainList(reviewModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected review repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}
