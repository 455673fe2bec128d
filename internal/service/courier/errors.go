package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrCourierNotFound = errors.New("courier not found")
	ErrAccountNotFound = errors.New("referenced account not found")
)
