package entities

import "time"

type Courier struct {
	ID          int64
	Phone       string
	Description *string
	AccountID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CourierModify struct {
	ID          *int64
	Phone       *string
	Description *string
	AccountID   *int64
}
