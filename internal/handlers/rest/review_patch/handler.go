package review_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var reviewUpdateDTO dto.ReviewUpdate
	err = json.NewDecoder(r.Body).Decode(&reviewUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reviewModifyEntity := entities.ReviewModify{
		ID:    &id,
		Score: reviewUpdateDTO.Score,
		Text:  reviewUpdateDTO.Text,
	}

	reviewEntity, err := h.service.UpdateReview(r.Context(), reviewModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingRequiredFields),
			errors.Is(err, review.ErrInvalidScore):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, review.ErrReviewNotFound):
			w.WriteHeader(http.StatusNotFound)
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
