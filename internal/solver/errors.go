package solver

import "errors"

var (
	// ErrInvalidPrice is returned when a candidate price is zero or negative.
	ErrInvalidPrice = errors.New("candidate prices must be positive integers")
)
