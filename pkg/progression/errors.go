package progression

import "errors"

var (
	// ErrInvalidStep is returned when a progression is built with a step
	// that cannot describe a sequence.
	ErrInvalidStep = errors.New("invalid step")
	// ErrIteratorExhausted is returned by Next once every element has been produced.
	ErrIteratorExhausted = errors.New("iterator exhausted")
	// ErrOutOfRange marks a bound that does not fit the element kind.
	ErrOutOfRange = errors.New("value out of range")
)
