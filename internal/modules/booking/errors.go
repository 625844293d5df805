package booking

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrForbidden        = errors.New("not the booking owner")
	ErrConflict         = errors.New("schedule already booked")
	ErrValidation       = errors.New("validation error")
)
