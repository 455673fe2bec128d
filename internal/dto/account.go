package dto

// Account never carries the password hash.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AccountCreate struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AccountCreateResponse struct {
	ID int64 `json:"id"`
}

type AccountUpdate struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}
