package domain

import "errors"

// Domain errors represent infrastructure and input failures.
// A query that matches no entity is not an error; see Resolution.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownResource indicates a resource URI or kind outside the dhbw scheme.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrDatasetInvalid indicates the dataset source is structurally malformed.
	ErrDatasetInvalid = errors.New("dataset invalid")

	// ErrDatasetUnavailable indicates no dataset has been loaded.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
