package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrEmptyDistrict         = errors.New("empty district")

	ErrRiderNotFound = errors.New("rider not found")
)
