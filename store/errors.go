package store

import "errors"

var (
	// ErrNotFound: lookup by customer number matched nothing.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidField: status update named an unrecognized flag. Programmer
	// error, never retried.
	ErrInvalidField = errors.New("unrecognized status field")
	// ErrDuplicateNumber: the customer number already exists. Retryable when
	// the number came from a generator.
	ErrDuplicateNumber = errors.New("customer number already exists")
	// ErrGenerationExhausted: the bounded regeneration loop kept colliding.
	ErrGenerationExhausted = errors.New("customer number generation exhausted")
	// ErrInvalidInput: malformed caller input (bad date string, party size...).
	ErrInvalidInput = errors.New("invalid input")
)
