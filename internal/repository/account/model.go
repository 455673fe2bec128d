package account

import "time"

type AccountDB struct {
	ID           int64
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AccountModifyDB struct {
	ID           *int64
	Name         *string
	Phone        *string
	PasswordHash *string
}
