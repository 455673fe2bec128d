package entities

import "time"

// Review rates a completed delivery: authored by a customer, received by a
// courier. Score stays within [1, 5].
type Review struct {
	ID         int64
	CustomerID int64
	CourierID  int64
	Score      int
	Text       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReviewModify struct {
	ID         *int64
	CustomerID *int64
	CourierID  *int64
	Score      *int
	Text       *string
}
