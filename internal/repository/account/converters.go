package account

import (
	"marketplace/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	return &entities.Account{
		ID:           a.ID,
		Name:         a.Name,
		Phone:        a.Phone,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromDomainModify(accountModify *entities.AccountModify) *AccountModifyDB {
	if accountModify == nil {
		return nil
	}

	return &AccountModifyDB{
		ID:           accountModify.ID,
		Name:         accountModify.Name,
		Phone:        accountModify.Phone,
		PasswordHash: accountModify.PasswordHash,
	}
}

func ToDomainList(accountsDB []AccountDB) []entities.Account {
	if len(accountsDB) == 0 {
		return []entities.Account{}
	}

	result := make([]entities.Account, len(accountsDB))
	for i, accountDB := range accountsDB {
		result[i] = *ToDomain(&accountDB)
	}
	return result
}
