package user_role_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var roleDTO UserRoleUpdate
	err := json.NewDecoder(r.Body).Decode(&roleDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modified, err := h.service.SetUserRole(r.Context(), id, roleDTO.Role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			httperr.Write(w, http.StatusBadRequest, "role must be admin or user")
		case errors.Is(err, user.ErrInvalidUserID):
			httperr.Write(w, http.StatusBadRequest, "invalid user id")
		case errors.Is(err, user.ErrUserNotFound):
			httperr.Write(w, http.StatusNotFound, "user not found")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := UserRoleUpdateResponse{
		ModifiedCount: modified,
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
