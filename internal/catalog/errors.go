package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service exists for the given id
	ErrServiceNotFound = errors.New("service not found")

	// ErrEmptyCatalog is returned when a catalog file contains no services
	ErrEmptyCatalog = errors.New("catalog contains no services")
)
