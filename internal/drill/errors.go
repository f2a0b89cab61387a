package drill

import "errors"

var (
	// ErrInvalidCount is returned for a negative step count.
	ErrInvalidCount = errors.New("invalid question count")
	// ErrInvalidDigits is returned for a digit width outside 1..MaxDigits.
	ErrInvalidDigits = errors.New("invalid digit width")
	// ErrInvalidOperation is returned for an unknown operation name.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNilSource is returned when a generator is built without a source.
	ErrNilSource = errors.New("random source is nil")
)
