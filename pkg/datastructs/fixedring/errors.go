package fixedring

import "errors"

var (
	// ErrNilStorage is returned when a ring is attached to nil backing storage.
	ErrNilStorage = errors.New("fixedring: nil backing storage")

	// ErrShortStorage is returned when the backing region cannot hold
	// capacity * elemSize bytes.
	ErrShortStorage = errors.New("fixedring: backing storage too short")

	// ErrElemSize is returned when an element size is invalid or a supplied
	// element does not match the ring's element size.
	ErrElemSize = errors.New("fixedring: element size mismatch")

	// ErrFull is returned when adding to a ring that is at capacity.
	ErrFull = errors.New("fixedring: ring is full")

	// ErrEmpty is returned when removing from a ring that holds no elements.
	ErrEmpty = errors.New("fixedring: ring is empty")
)
