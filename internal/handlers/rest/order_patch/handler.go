package order_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:        &id,
		WhereTo:   orderUpdateDTO.WhereTo,
		WhereFrom: orderUpdateDTO.WhereFrom,
		Price:     orderUpdateDTO.Price,
		Status:    orderUpdateDTO.Status,
	}

	if orderUpdateDTO.DateWhen != nil {
		dateWhen, err := time.Parse(time.DateOnly, *orderUpdateDTO.DateWhen)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		orderModifyEntity.DateWhen = &dateWhen
	}

	// Assignment is a courier claiming an order for themselves: the caller
	// must hold the courier role, and whatever courier_id the body carries
	// is replaced by the caller's own.
	if orderUpdateDTO.CourierID != nil {
		courierID, err := h.identity.CourierID(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
			case errors.Is(err, identity.ErrCourierOnly):
				w.WriteHeader(http.StatusForbidden)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}
		orderModifyEntity.CourierID = &courierID
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidWhereTo),
			errors.Is(err, order.ErrInvalidWhereFrom),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrCourierNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
