package courier

import "time"

type CourierDB struct {
	ID          int64
	Phone       string
	Description *string
	AccountID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CourierModifyDB struct {
	ID          *int64
	Phone       *string
	Description *string
	AccountID   *int64
}
