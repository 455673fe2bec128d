package account_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/service/account"
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
	var accountCreateDTO dto.AccountCreate
	err := json.NewDecoder(r.Body).Decode(&accountCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateAccount(r.Context(), accountCreateDTO.Name, accountCreateDTO.Phone, accountCreateDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidName),
			errors.Is(err, account.ErrInvalidPhone),
			errors.Is(err, account.ErrInvalidPassword),
			errors.Is(err, account.ErrPhoneAlreadyExists):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AccountCreateResponse{
		ID: id,
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
