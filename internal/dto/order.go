package dto

// Order carries date_when as a YYYY-MM-DD string on the wire.
type Order struct {
	ID         int64   `json:"id"`
	WhereTo    string  `json:"where_to"`
	WhereFrom  string  `json:"where_from"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	DateWhen   string  `json:"date_when"`
	CustomerID int64   `json:"customer_id"`
	CourierID  *int64  `json:"courier_id,omitempty"`
}

// OrderCreate has no customer_id: ownership comes from the caller's token.
type OrderCreate struct {
	WhereTo   string  `json:"where_to"`
	WhereFrom string  `json:"where_from"`
	Price     float64 `json:"price"`
	Status    *string `json:"status"`
	DateWhen  string  `json:"date_when"`
}

type OrderUpdate struct {
	WhereTo   *string  `json:"where_to"`
	WhereFrom *string  `json:"where_from"`
	Price     *float64 `json:"price"`
	Status    *string  `json:"status"`
	DateWhen  *string  `json:"date_when"`
	CourierID *int64   `json:"courier_id"`
}
