package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/customer"
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

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)
	query := `INSERT INTO customers (phone, description, account_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyModel.Phone,
		customerModifyModel.Description,
		customerModifyModel.AccountID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, customer.ErrAccountNotFound
		}
		return 0, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", customerModifyModel.Phone)
	}
	if customerModifyModel.Description != nil {
		builder = builder.Set("description", customerModifyModel.Description)
	}
	if customerModifyModel.AccountID != nil {
		builder = builder.Set("account_id", customerModifyModel.AccountID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": customerModifyModel.ID}).
		Suffix("RETURNING id, phone, description, account_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&customerModel.ID,
			&customerModel.Phone,
			&customerModel.Description,
			&customerModel.AccountID,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, customer.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Customer, error) {
	query := `SELECT id, phone, description, account_id, created_at, updated_at
		FROM customers
		WHERE id = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&customerModel.ID,
			&customerModel.Phone,
			&customerModel.Description,
			&customerModel.AccountID,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

// GetByAccountID resolves the customer role of an account. Exactly one row
// is expected in practice; the lowest id wins if data ever contains more.
func (r *Repository) GetByAccountID(ctx context.Context, accountID int64) (*entities.Customer, error) {
	query := `SELECT id, phone, description, account_id, created_at, updated_at
		FROM customers
		WHERE account_id = $1
		ORDER BY id
		LIMIT 1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, accountID).
		Scan(
			&customerModel.ID,
			&customerModel.Phone,
			&customerModel.Description,
			&customerModel.AccountID,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyaccountid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetAll(ctx context.Context, skip, limit int64) ([]entities.Customer, error) {
	query := `
	SELECT id, phone, description, account_id, created_at, updated_at
	FROM customers
	ORDER BY id
	LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, 8)
	for rows.Next() {
		var customerModel CustomerDB
		err := rows.Scan(
			&customerModel.ID,
			&customerModel.Phone,
			&customerModel.Description,
			&customerModel.AccountID,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	return ToDomainList(customerModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected customer repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}
