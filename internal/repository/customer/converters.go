package customer

import (
	"marketplace/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:          c.ID,
		Phone:       c.Phone,
		Description: c.Description,
		AccountID:   c.AccountID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}

	return &CustomerModifyDB{
		ID:          customerModify.ID,
		Phone:       customerModify.Phone,
		Description: customerModify.Description,
		AccountID:   customerModify.AccountID,
	}
}

func ToDomainList(customersDB []CustomerDB) []entities.Customer {
	if len(customersDB) == 0 {
		return []entities.Customer{}
	}

	result := make([]entities.Customer, len(customersDB))
	for i, customerDB := range customersDB {
		result[i] = *ToDomain(&customerDB)
	}
	return result
}
