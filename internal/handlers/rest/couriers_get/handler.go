package couriers_get

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

	courierEntities, err := h.service.GetCouriers(r.Context(), skip, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.Courier, len(courierEntities))
	for i, courierEntity := range courierEntities {
		courierDTOs[i].ID = courierEntity.ID
		courierDTOs[i].Phone = courierEntity.Phone
		courierDTOs[i].Description = courierEntity.Description
		courierDTOs[i].AccountID = courierEntity.AccountID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
