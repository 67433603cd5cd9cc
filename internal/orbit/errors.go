package orbit

import (
	"errors"
	"fmt"
)

var (
	// ErrEccentricity indicates an eccentricity outside [0, 1).
	ErrEccentricity = errors.New("orbit: eccentricity outside [0, 1)")

	// ErrSemiMajorAxis indicates a non-positive or non-finite semi-major axis.
	ErrSemiMajorAxis = errors.New("orbit: semi-major axis must be positive")

	// ErrMissingPeriod indicates a period that cannot be derived from the
	// element set (Kepler's third law only holds for AU, Sun-orbiting elements).
	ErrMissingPeriod = errors.New("orbit: orbital period required for non-heliocentric elements")

	// ErrZeroPeriod indicates an explicit period of zero days.
	ErrZeroPeriod = errors.New("orbit: orbital period must be non-zero")

	// ErrUnknownBody indicates a body id the source does not know.
	ErrUnknownBody = errors.New("orbit: unknown body")

	// ErrParentCycle indicates parent links deeper than MaxDepth.
	ErrParentCycle = errors.New("orbit: parent chain too deep (cycle?)")
)

// ElementsError wraps an error with the body it was raised for.
type ElementsError struct {
	Body    string
	Wrapped error
}

func (e *ElementsError) Error() string {
	if e.Body == "" {
		return e.Wrapped.Error()
	}
	return fmt.Sprintf("%s (body %q)", e.Wrapped.Error(), e.Body)
}

func (e *ElementsError) Unwrap() error {
	return e.Wrapped
}
