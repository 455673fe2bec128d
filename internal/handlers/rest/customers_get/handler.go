package customers_get

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

	customerEntities, err := h.service.GetCustomers(r.Context(), skip, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	customerDTOs := make([]dto.Customer, len(customerEntities))
	for i, customerEntity := range customerEntities {
		customerDTOs[i].ID = customerEntity.ID
		customerDTOs[i].Phone = customerEntity.Phone
		customerDTOs[i].Description = customerEntity.Description
		customerDTOs[i].AccountID = customerEntity.AccountID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(customerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
