package entities

import "time"

type Customer struct {
	ID          int64
	Phone       string
	Description *string
	AccountID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerModify struct {
	ID          *int64
	Phone       *string
	Description *string
	AccountID   *int64
}
