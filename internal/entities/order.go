package entities

import "time"

// Order is a delivery request. Status is an open string: any value is
// accepted at creation and any value may overwrite it on update, there is
// no transition table. CourierID is nil until a courier assigns themselves.
type Order struct {
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

const DefaultOrderStatus = "new"

type OrderModify struct {
	ID         *int64
	WhereTo    *string
	WhereFrom  *string
	Price      *float64
	Status     *string
	DateWhen   *time.Time
	CustomerID *int64
	CourierID  *int64
}
