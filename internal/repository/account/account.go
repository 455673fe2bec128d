package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/account"
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

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)
	query := `INSERT INTO accounts (name, phone, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Name,
		accountModifyModel.Phone,
		accountModifyModel.PasswordHash,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, account.ErrPhoneAlreadyExists
		}
		return 0, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	if accountModifyModel.Name != nil {
		builder = builder.Set("name", accountModifyModel.Name)
	}
	if accountModifyModel.Phone != nil {
		builder = builder.Set("phone", accountModifyModel.Phone)
	}
	if accountModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", accountModifyModel.PasswordHash)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING id, name, phone, password_hash, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	var accountModel AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountModel.ID,
			&accountModel.Name,
			&accountModel.Phone,
			&accountModel.PasswordHash,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, account.ErrPhoneAlreadyExists
		}

		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT id, name, phone, password_hash, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&accountModel.ID,
			&accountModel.Name,
			&accountModel.Phone,
			&accountModel.PasswordHash,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.Account, error) {
	query := `SELECT id, name, phone, password_hash, created_at, updated_at
		FROM accounts
		WHERE phone = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, phone).
		Scan(
			&accountModel.ID,
			&accountModel.Name,
			&accountModel.Phone,
			&accountModel.PasswordHash,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyphone error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetAll(ctx context.Context, skip, limit int64) ([]entities.Account, error) {
	query := `
	SELECT id, name, phone, password_hash, created_at, updated_at
	FROM accounts
	ORDER BY id
	LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
	}
	defer rows.Close()

	accountModels := make([]AccountDB, 0, 8)
	for rows.Next() {
		var accountModel AccountDB
		err := rows.Scan(
			&accountModel.ID,
			&accountModel.Name,
			&accountModel.Phone,
			&accountModel.PasswordHash,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
		}
		accountModels = append(accountModels, accountModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
	}

	return ToDomainList(accountModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected account repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
