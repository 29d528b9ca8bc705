package identity

import (
	"context"
	"net/http"
	"strings"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/pkg/logger"
)

type ctxKey struct{}

// Middleware is the credential gate: a missing header or empty token
// is 401, a token the verifier rejects is 403. On success the verified
// identity is attached to the request context.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				httperr.Write(w, http.StatusUnauthorized, "authorization header is required")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				httperr.Write(w, http.StatusUnauthorized, "bearer token is required")
				return
			}

			verified, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("credential verification failed")

				httperr.Write(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), verified)))
		})
	}
}

func NewContext(ctx context.Context, verified *entities.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, verified)
}

// FromContext returns the verified identity attached by Middleware.
func FromContext(ctx context.Context) (*entities.Identity, bool) {
	verified, ok := ctx.Value(ctxKey{}).(*entities.Identity)
	return verified, ok && verified != nil
}
