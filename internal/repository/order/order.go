package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
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

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (where_to, where_from, price, status, date_when, customer_id, courier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, where_to, where_from, price, status, date_when, customer_id, courier_id, created_at, updated_at`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.WhereTo,
		orderModifyModel.WhereFrom,
		orderModifyModel.Price,
		orderModifyModel.Status,
		orderModifyModel.DateWhen,
		orderModifyModel.CustomerID,
		orderModifyModel.CourierID,
	).Scan(
		&orderModel.ID,
		&orderModel.WhereTo,
		&orderModel.WhereFrom,
		&orderModel.Price,
		&orderModel.Status,
		&orderModel.DateWhen,
		&orderModel.CustomerID,
		&orderModel.CourierID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.WhereTo != nil {
		builder = builder.Set("where_to", orderModifyModel.WhereTo)
	}
	if orderModifyModel.WhereFrom != nil {
		builder = builder.Set("where_from", orderModifyModel.WhereFrom)
	}
	if orderModifyModel.Price != nil {
		builder = builder.Set("price", orderModifyModel.Price)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.DateWhen != nil {
		builder = builder.Set("date_when", orderModifyModel.DateWhen)
	}
	if orderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", orderModifyModel.CourierID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING id, where_to, where_from, price, status, date_when, customer_id, courier_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.WhereTo,
			&orderModel.WhereFrom,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.DateWhen,
			&orderModel.CustomerID,
			&orderModel.CourierID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT id, where_to, where_from, price, status, date_when, customer_id, courier_id, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.WhereTo,
			&orderModel.WhereFrom,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.DateWhen,
			&orderModel.CustomerID,
			&orderModel.CourierID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, skip, limit int64) ([]entities.Order, error) {
	query := `
	SELECT id, where_to, where_from, price, status, date_when, customer_id, courier_id, created_at, updated_at
	FROM orders
	ORDER BY id
	LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.WhereTo,
			&orderModel.WhereFrom,
			&orderModel.Price,
			&orderModel.Status,
			&orderModel.DateWhen,
			&orderModel.CustomerID,
			&orderModel.CourierID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}
