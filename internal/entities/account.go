package entities

import "time"

// Account is the authentication identity (name, phone, password hash),
// independent of business roles. A Customer and/or a Courier may reference
// it through their AccountID.
type Account struct {
	ID           int64
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AccountModify struct {
	ID           *int64
	Name         *string
	Phone        *string
	PasswordHash *string
}
