package reviews_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/handlers/rest/pagination"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination.FromQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reviewEntities, err := h.service.GetReviews(r.Context(), skip, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reviewDTOs := make([]dto.Review, len(reviewEntities))
	for i, reviewEntity := range reviewEntities {
		reviewDTOs[i].ID = reviewEntity.ID
		reviewDTOs[i].CustomerID = reviewEntity.CustomerID
		reviewDTOs[i].CourierID = reviewEntity.CourierID
		reviewDTOs[i].Score = reviewEntity.Score
		reviewDTOs[i].Text = reviewEntity.Text
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reviewDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
