package service

import "errors"

// Errors shared across services. Handlers translate these to HTTP statuses.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("you do not have permission to access this resource")
	ErrNotFound   = errors.New("resource not found")
)
