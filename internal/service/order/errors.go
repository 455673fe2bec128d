package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWhereTo        = errors.New("invalid destination address")
	ErrInvalidWhereFrom      = errors.New("invalid origin address")
	ErrInvalidPrice          = errors.New("price cannot be negative")

	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("referenced customer not found")
	ErrCourierNotFound  = errors.New("referenced courier not found")
)
