package stego

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrCapacityExceeded is returned when a framed payload does not fit the carrier.
	ErrCapacityExceeded = errors.New("payload exceeds carrier capacity")

	// ErrNoHiddenData is returned when extraction finds no embedded payload.
	ErrNoHiddenData = errors.New("no hidden data found")

	// ErrCorruptPayload is returned when an embedded payload is present but malformed.
	ErrCorruptPayload = errors.New("hidden data is corrupt")

	// ErrUnsupportedCombination is returned when an algorithm does not apply to the carrier kind.
	ErrUnsupportedCombination = errors.New("algorithm does not support this carrier")

	// ErrCarrierDecode is returned when the carrier itself cannot be parsed.
	ErrCarrierDecode = errors.New("carrier could not be decoded")
)

// CapacityError reports how far a payload overshoots what the carrier can hold.
type CapacityError struct {
	Algorithm Algorithm
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: payload needs %d bytes, carrier holds %d", e.Algorithm, e.Required, e.Available)
}

// Is implements errors.Is for sentinel error matching.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
