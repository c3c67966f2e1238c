package model

import "errors"

// Error kinds returned by board and registry operations.
// Callers match them with errors.Is; messages carry the offending id.
var (
	// ErrNotFound is returned when a referenced task, column or label does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a required text field is empty
	ErrValidation = errors.New("validation failed")

	// ErrIndexOutOfRange is returned when a drag index does not fit the current column
	ErrIndexOutOfRange = errors.New("index out of range")
)
