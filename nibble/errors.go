package nibble

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity indicates a fixed-capacity container had no room for another pair.
	ErrCapacity = errors.New("nibble: capacity exceeded")
	// ErrMalformed indicates a checked conversion found bits outside the nibble's half.
	ErrMalformed = errors.New("nibble: bits set outside nibble")
	// ErrIndexOutOfRange indicates a checked accessor was given an index past the end.
	ErrIndexOutOfRange = errors.New("nibble: index out of range")
)

// CapacityError is returned when a nibble could not be stored in a
// fixed-capacity container. The rejected nibble is handed back in Value.
type CapacityError struct {
	Value Lo
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: cannot store %s", ErrCapacity, e.Value)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// IndexError reports which index was out of range for a view of a given length.
func IndexError(index, length int) error {
	return fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, index, length)
}
