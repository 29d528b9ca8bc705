package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
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
	var userDTO UserCreate
	err := json.NewDecoder(r.Body).Decode(&userDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userModify := entities.UserModify{
		Email: &userDTO.Email,
	}
	if userDTO.Role != "" {
		role := entities.UserRoleType(userDTO.Role)
		userModify.Role = &role
	}

	id, created, err := h.service.UpsertUser(r.Context(), userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail):
			httperr.Write(w, http.StatusBadRequest, "valid email is required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := UserCreateResponse{
		ID:      id,
		Message: "user already exists",
	}
	status := http.StatusOK
	if created {
		response.Message = "user created"
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
