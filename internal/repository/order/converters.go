package order

import (
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:         o.ID,
		WhereTo:    o.WhereTo,
		WhereFrom:  o.WhereFrom,
		Price:      o.Price,
		Status:     o.Status,
		DateWhen:   o.DateWhen,
		CustomerID: o.CustomerID,
		CourierID:  o.CourierID,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		ID:         orderModify.ID,
		WhereTo:    orderModify.WhereTo,
		WhereFrom:  orderModify.WhereFrom,
		Price:      orderModify.Price,
		Status:     orderModify.Status,
		DateWhen:   orderModify.DateWhen,
		CustomerID: orderModify.CustomerID,
		CourierID:  orderModify.CourierID,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
