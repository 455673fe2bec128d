package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Account struct {
	repository Repository
	hasher     PasswordHasher
	txManager  TxManager
}

func New(repository Repository, hasher PasswordHasher, txManager TxManager) *Account {
	return &Account{
		repository: repository,
		hasher:     hasher,
		txManager:  txManager,
	}
}

// CreateAccount registers a new authentication identity. Phone uniqueness is
// checked before the insert inside one unit of work; the unique constraint on
// accounts.phone backstops the race between concurrent creates.
func (s *Account) CreateAccount(ctx context.Context, name, phone, password string) (int64, error) {
	if !isValidName(name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPassword(password) {
		return 0, ErrInvalidPassword
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	var id int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repository.GetByPhone(ctx, phone)
		if err == nil {
			return ErrPhoneAlreadyExists
		}
		if !errors.Is(err, ErrAccountNotFound) {
			return fmt.Errorf("check phone uniqueness: %w", err)
		}

		accountModify := entities.AccountModify{
			Name:         &name,
			Phone:        &phone,
			PasswordHash: &hash,
		}

		id, err = s.repository.Create(ctx, accountModify)
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Account) UpdateAccount(ctx context.Context, id int64, name, phone, password *string) (*entities.Account, error) {
	if name == nil && phone == nil && password == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if name != nil && !isValidName(*name) {
		return nil, ErrInvalidName
	}
	if phone != nil && !isValidPhone(*phone) {
		return nil, ErrInvalidPhone
	}
	if password != nil && !isValidPassword(*password) {
		return nil, ErrInvalidPassword
	}

	accountModify := entities.AccountModify{ID: &id}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		accountModify.Name = &trimmed
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		accountModify.Phone = &trimmed
	}
	if password != nil {
		hash, err := s.hasher.Hash(*password)
		if err != nil {
			return nil, fmt.Errorf("update account: %w", err)
		}
		accountModify.PasswordHash = &hash
	}

	var updated *entities.Account
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if accountModify.Phone != nil {
			existing, err := s.repository.GetByPhone(ctx, *accountModify.Phone)
			if err == nil && existing.ID != id {
				return ErrPhoneAlreadyExists
			}
			if err != nil && !errors.Is(err, ErrAccountNotFound) {
				return fmt.Errorf("check phone uniqueness: %w", err)
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, accountModify)
		if err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Authenticate verifies phone+password for login. Unknown phone and wrong
// password collapse into one failure so the response leaks nothing.
func (s *Account) Authenticate(ctx context.Context, phone, password string) (*entities.Account, error) {
	accountEntity, err := s.repository.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	match, err := s.hasher.Compare(accountEntity.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return accountEntity, nil
}

func (s *Account) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	accountEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return accountEntity, nil
}

func (s *Account) GetAccounts(ctx context.Context, skip, limit int64) ([]entities.Account, error) {
	accounts, err := s.repository.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	return accounts, nil
}

func (s *Account) DeleteAccount(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
