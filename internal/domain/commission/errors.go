package commission

import "errors"

var (
	// ErrValidation indicates a required field is missing or a value is outside the vocabulary.
	ErrValidation = errors.New("invalid commission")
	// ErrNotFound indicates no commission exists with the given id.
	ErrNotFound = errors.New("commission not found")
	// ErrStorage wraps failures of the backing store.
	ErrStorage = errors.New("commission storage failure")
)
