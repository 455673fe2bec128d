package order_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/service/identity"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	identity Identity
}

func New(log handlerLogger, service Service, identitySvc Identity) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		identity: identitySvc,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Ownership comes from the token, never from the body.
	customerID, err := h.identity.CustomerID(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, identity.ErrCustomerOnly):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	var orderCreateDTO dto.OrderCreate
	err = json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dateWhen, err := time.Parse(time.DateOnly, orderCreateDTO.DateWhen)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		WhereTo:    &orderCreateDTO.WhereTo,
		WhereFrom:  &orderCreateDTO.WhereFrom,
		Price:      &orderCreateDTO.Price,
		Status:     orderCreateDTO.Status,
		DateWhen:   &dateWhen,
		CustomerID: &customerID,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidWhereTo),
			errors.Is(err, order.ErrInvalidWhereFrom),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrCustomerNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:         orderEntity.ID,
		WhereTo:    orderEntity.WhereTo,
		WhereFrom:  orderEntity.WhereFrom,
		Price:      orderEntity.Price,
		Status:     orderEntity.Status,
		DateWhen:   orderEntity.DateWhen.Format(time.DateOnly),
		CustomerID: orderEntity.CustomerID,
		CourierID:  orderEntity.CourierID,
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
