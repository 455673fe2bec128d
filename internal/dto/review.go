package dto

type Review struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	CourierID  int64   `json:"courier_id"`
	Score      int     `json:"score"`
	Text       *string `json:"text,omitempty"`
}

type ReviewCreate struct {
	CustomerID int64   `json:"customer_id"`
	CourierID  int64   `json:"courier_id"`
	Score      int     `json:"score"`
	Text       *string `json:"text"`
}

type ReviewUpdate struct {
	Score *int    `json:"score"`
	Text  *string `json:"text"`
}
