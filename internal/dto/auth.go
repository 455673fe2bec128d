package dto

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Me describes the caller: the account plus whichever roles it holds.
type Me struct {
	AccountID  int64  `json:"account_id"`
	CustomerID *int64 `json:"customer_id,omitempty"`
	CourierID  *int64 `json:"courier_id,omitempty"`
}
