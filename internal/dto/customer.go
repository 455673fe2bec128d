package dto

type Customer struct {
	ID          int64   `json:"id"`
	Phone       string  `json:"phone"`
	Description *string `json:"description,omitempty"`
	AccountID   *int64  `json:"account_id,omitempty"`
}

type CustomerCreate struct {
	Phone       string  `json:"phone"`
	Description *string `json:"description"`
	AccountID   *int64  `json:"account_id"`
}

type CustomerCreateResponse struct {
	ID int64 `json:"id"`
}

type CustomerUpdate struct {
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	AccountID   *int64  `json:"account_id"`
}
