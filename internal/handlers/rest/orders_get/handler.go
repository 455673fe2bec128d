package orders_get

import (
	"encoding/json"
	"net/http"
	"time"

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

	orderEntities, err := h.service.GetOrders(r.Context(), skip, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i].ID = orderEntity.ID
		orderDTOs[i].WhereTo = orderEntity.WhereTo
		orderDTOs[i].WhereFrom = orderEntity.WhereFrom
		orderDTOs[i].Price = orderEntity.Price
		orderDTOs[i].Status = orderEntity.Status
		orderDTOs[i].DateWhen = orderEntity.DateWhen.Format(time.DateOnly)
		orderDTOs[i].CustomerID = orderEntity.CustomerID
		orderDTOs[i].CourierID = orderEntity.CourierID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
