package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptySearchQuery      = errors.New("empty search query")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidUserID         = errors.New("invalid user id")

	ErrUserNotFound = errors.New("user not found")
)
