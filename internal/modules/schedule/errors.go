package schedule

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNotFound        = errors.New("schedule not found")
	ErrConflict        = errors.New("schedule overlap")
	ErrValidation      = errors.New("validation error")
)
