package identity

import "errors"

var (
	ErrUnauthenticated = errors.New("missing or invalid credentials")
	ErrCustomerOnly    = errors.New("customer-only resource")
	ErrCourierOnly     = errors.New("courier-only resource")
)
