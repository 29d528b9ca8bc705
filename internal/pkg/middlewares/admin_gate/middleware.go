package admin_gate

import (
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/pkg/middlewares/identity"
	"parcelmarket/internal/service/user"
	"parcelmarket/pkg/logger"
)

// Middleware is the admin gate. It must be stacked after the identity
// gate: the caller's stored role is looked up by the verified email
// and anything other than "admin" is 403.
func Middleware(log handlerLogger, directory UserDirectory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verified, ok := identity.FromContext(r.Context())
			if !ok {
				httperr.Write(w, http.StatusForbidden, "forbidden access")
				return
			}

			role, err := directory.GetUserRole(r.Context(), verified.Email)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					httperr.Write(w, http.StatusForbidden, "forbidden access")
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("email", verified.Email),
				).Error("admin gate role lookup failed")

				httperr.Write(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if role != entities.RoleAdmin {
				httperr.Write(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
