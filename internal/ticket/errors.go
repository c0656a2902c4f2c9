package ticket

import "errors"

var (
	// ErrNotFound is returned when a lookup or patch targets an id the store
	// never produced.
	ErrNotFound = errors.New("ticket not found")

	ErrInvalidTitle       = errors.New("invalid ticket title")
	ErrInvalidDescription = errors.New("invalid ticket description")
	ErrInvalidStatus      = errors.New("invalid ticket status")
)
