package review

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidScore          = errors.New("score must be between 1 and 5")

	ErrReviewNotFound      = errors.New("review not found")
	ErrParticipantNotFound = errors.New("referenced customer or courier not found")
)
