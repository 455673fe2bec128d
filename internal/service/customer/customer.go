package customer

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Customer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Customer {
	return &Customer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (int64, error) {
	if customerModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidPhone(*customerModify.Phone) {
		return 0, ErrInvalidPhone
	}

	trimmed := strings.TrimSpace(*customerModify.Phone)
	customerModify.Phone = &trimmed

	id, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	return id, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Phone == nil &&
		customerModify.Description == nil &&
		customerModify.AccountID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if customerModify.Phone != nil && !isValidPhone(*customerModify.Phone) {
		return nil, ErrInvalidPhone
	}

	customerEntity, err := s.repository.Update(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customerEntity, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id int64) (*entities.Customer, error) {
	customerEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customerEntity, nil
}

func (s *Customer) GetCustomers(ctx context.Context, skip, limit int64) ([]entities.Customer, error) {
	customers, err := s.repository.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

func (s *Customer) DeleteCustomer(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
