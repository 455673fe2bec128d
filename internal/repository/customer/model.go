package customer

import "time"

type CustomerDB struct {
	ID          int64
	Phone       string
	Description *string
	AccountID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerModifyDB struct {
	ID          *int64
	Phone       *string
	Description *string
	AccountID   *int64
}
