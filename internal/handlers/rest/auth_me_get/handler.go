package auth_me_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/service/identity"
	"marketplace/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	identity Identity
}

func New(log handlerLogger, identitySvc Identity) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		identity: identitySvc,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorization := r.Header.Get("Authorization")

	accountID, err := h.identity.AccountID(authorization)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := dto.Me{
		AccountID: accountID,
	}

	// Roles are optional: an account may hold neither.
	customerID, err := h.identity.CustomerID(r.Context(), authorization)
	switch {
	case err == nil:
		response.CustomerID = &customerID
	case errors.Is(err, identity.ErrCustomerOnly):
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierID, err := h.identity.CourierID(r.Context(), authorization)
	switch {
	case err == nil:
		response.CourierID = &courierID
	case errors.Is(err, identity.ErrCourierOnly):
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
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
