package identity

import (
	"context"

	"parcelmarket/internal/entities"
	"parcelmarket/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Verifier validates a bearer credential with the external identity
// provider and yields the verified claim.
type Verifier interface {
	Verify(ctx context.Context, token string) (*entities.Identity, error)
}
