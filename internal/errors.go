package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Match them with errors.Is; the returned errors carry context
// wrapped around these values.
var (
	// Fewer than two distinct points were given to QuickHull.
	ErrInsufficientPoints = errors.New("insufficient points for a hull")
	// Hull construction could not proceed, e.g. every point is identical.
	ErrGeometryDegenerate = errors.New("degenerate geometry")
	// A leg's fixed point did not converge within its bound. This means the
	// geometric predicates disagree with each other, not that the input is bad.
	ErrIterationLimitExceeded = errors.New("iteration limit exceeded")
)

// The failure of one leg of a path. Leg is the 0-based index of the leg, so
// leg i runs from waypoint i to waypoint i+1.
type LegError struct {
	Leg int
	Err error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("leg %d: %v", e.Leg, e.Err)
}

func (e *LegError) Unwrap() error {
	return e.Err
}

// An error of a given kind caused by another error. errors.Is matches both
// the kind and anything in the cause's chain.
type kindError struct {
	kind  error
	cause error
}

func withKind(kind, cause error) error {
	return &kindError{kind: kind, cause: cause}
}

func (e *kindError) Error() string {
	return fmt.Sprintf("%v: %v", e.kind, e.cause)
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}
