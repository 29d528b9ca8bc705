package users_search_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/service/user"
	"parcelmarket/pkg/logger"
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
	emailFragment := r.URL.Query().Get("email")

	userEntities, err := h.service.SearchUsers(r.Context(), emailFragment)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmptySearchQuery):
			httperr.Write(w, http.StatusBadRequest, "email query parameter is required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	userDTOs := make([]UserSummary, len(userEntities))
	for i, userEntity := range userEntities {
		userDTOs[i].Email = userEntity.Email
		userDTOs[i].Role = userEntity.Role.String()
		userDTOs[i].CreatedAt = userEntity.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
