package catalog

import "errors"

var (
	ErrNotFound  = errors.New("service not found")
	ErrNameTaken = errors.New("service name already exists")
)
