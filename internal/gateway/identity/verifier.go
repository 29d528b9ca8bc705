package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"parcelmarket/internal/entities"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier checks bearer tokens issued by the external identity
// provider. Tokens are HS256-signed and carry the subject's email in
// the "email" claim.
type Verifier struct {
	secret []byte
}

func New(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*entities.Identity, error) {
	parsed, err := jwt.Parse(
		token,
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("gateway identity, verify token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}

	return &entities.Identity{Email: email}, nil
}
