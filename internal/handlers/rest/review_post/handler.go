package review_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/service/review"
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
	var reviewCreateDTO dto.ReviewCreate
	err := json.NewDecoder(r.Body).Decode(&reviewCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reviewModifyEntity := entities.ReviewModify{
		CustomerID: &reviewCreateDTO.CustomerID,
		CourierID:  &reviewCreateDTO.CourierID,
		Score:      &reviewCreateDTO.Score,
		Text:       reviewCreateDTO.Text,
	}

	reviewEntity, err := h.service.CreateReview(r.Context(), reviewModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingRequiredFields),
			errors.Is(err, review.ErrInvalidScore),
			errors.Is(err, review.ErrParticipantNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Review{
		ID:         reviewEntity.ID,
		CustomerID: reviewEntity.CustomerID,
		CourierID:  reviewEntity.CourierID,
		Score:      reviewEntity.Score,
		Text:       reviewEntity.Text,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
