package review

import "time"

type ReviewDB struct {
	ID         int64
	CustomerID int64
	CourierID  int64
	Score      int
	Text       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReviewModifyDB struct {
	ID         *int64
	CustomerID *int64
	CourierID  *int64
	Score      *int
	Text       *string
}
