package order

import "time"

type OrderDB struct {
	ID         int64
	WhereTo    string
	WhereFrom  string
	Price      float64
	Status     string
	DateWhen   time.Time
	CustomerID int64
	CourierID  *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderModifyDB struct {
	ID         *int64
	WhereTo    *string
	WhereFrom  *string
	Price      *float64
	Status     *string
	DateWhen   *time.Time
	CustomerID *int64
	CourierID  *int64
}
