package tracking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
)
