package dto

type Courier struct {
	ID          int64   `json:"id"`
	Phone       string  `json:"phone"`
	Description *string `json:"description,omitempty"`
	AccountID   *int64  `json:"account_id,omitempty"`
}

type CourierCreate struct {
	Phone       string  `json:"phone"`
	Description *string `json:"description"`
	AccountID   *int64  `json:"account_id"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	AccountID   *int64  `json:"account_id"`
}
