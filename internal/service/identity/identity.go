package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/service/courier"
	"marketplace/internal/service/customer"
)

const bearerPrefix = "Bearer "

// Identity resolves the caller behind an Authorization header into an
// account and, on demand, into its customer or courier role. An account
// may hold either role, both, or neither.
type Identity struct {
	verifier  TokenVerifier
	customers CustomerRepository
	couriers  CourierRepository
}

func New(verifier TokenVerifier, customers CustomerRepository, couriers CourierRepository) *Identity {
	return &Identity{
		verifier:  verifier,
		customers: customers,
		couriers:  couriers,
	}
}

// AccountID authenticates the raw Authorization header value and returns
// the account behind it.
func (s *Identity) AccountID(authorization string) (int64, error) {
	token, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok || token == "" {
		return 0, ErrUnauthenticated
	}

	accountID, err := s.verifier.Verify(token)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	return accountID, nil
}

// CustomerID authenticates the caller and requires the customer role.
func (s *Identity) CustomerID(ctx context.Context, authorization string) (int64, error) {
	accountID, err := s.AccountID(authorization)
	if err != nil {
		return 0, err
	}

	customerEntity, err := s.customers.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return 0, ErrCustomerOnly
		}
		return 0, fmt.Errorf("resolve customer role: %w", err)
	}

	return customerEntity.ID, nil
}

// CourierID authenticates the caller and requires the courier role.
func (s *Identity) CourierID(ctx context.Context, authorization string) (int64, error) {
	accountID, err := s.AccountID(authorization)
	if err != nil {
		return 0, err
	}

	courierEntity, err := s.couriers.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, courier.ErrCourierNotFound) {
			return 0, ErrCourierOnly
		}
		return 0, fmt.Errorf("resolve courier role: %w", err)
	}

	return courierEntity.ID, nil
}
