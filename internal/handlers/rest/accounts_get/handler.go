package accounts_get

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

	accountEntities, err := h.service.GetAccounts(r.Context(), skip, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	accountDTOs := make([]dto.Account, len(accountEntities))
	for i, accountEntity := range accountEntities {
		accountDTOs[i].ID = accountEntity.ID
		accountDTOs[i].Name = accountEntity.Name
		accountDTOs[i].Phone = accountEntity.Phone
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(accountDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
