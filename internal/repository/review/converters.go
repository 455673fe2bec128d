package review

import (
	"marketplace/internal/entities"
)

func ToDomain(rv *ReviewDB) *entities.Review {
	if rv == nil {
		return nil
	}

	return &entities.Review{
		ID:         rv.ID,
		CustomerID: rv.CustomerID,
		CourierID:  rv.CourierID,
		Score:      rv.Score,
		Text:       rv.Text,
		CreatedAt:  rv.CreatedAt,
		UpdatedAt:  rv.UpdatedAt,
	}
}

func FromDomainModify(reviewModify *entities.ReviewModify) *ReviewModifyDB {
	if reviewModify == nil {
		return nil
	}

	return &ReviewModifyDB{
		ID:         reviewModify.ID,
		CustomerID: reviewModify.CustomerID,
		CourierID:  reviewModify.CourierID,
		Score:      reviewModify.Score,
		Text:       reviewModify.Text,
	}
}

func ToDomainList(reviewsDB []ReviewDB) []entities.Review {
	if len(reviewsDB) == 0 {
		return []entities.Review{}
	}

	result := make([]entities.Review, len(reviewsDB))
	for i, reviewDB := range reviewsDB {
		result[i] = *ToDomain(&reviewDB)
	}
	return result
}
