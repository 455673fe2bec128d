package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("referenced account not found")
)
