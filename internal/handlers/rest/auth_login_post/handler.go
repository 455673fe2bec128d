package auth_login_post

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
	issuer  TokenIssuer
}

func New(log handlerLogger, service Service, issuer TokenIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		issuer:  issuer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accountEntity, err := h.service.Authenticate(r.Context(), loginDTO.Phone, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidCredentials):
			// Unknown phone and wrong password are indistinguishable.
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	token, err := h.issuer.Issue(accountEntity.ID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("issue token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.LoginResponse{
		Token: token,
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
