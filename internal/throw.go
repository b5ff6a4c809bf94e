package internal

import "github.com/pkg/errors"

// Internal invariants (a hull vertex that is not an input point, a leg that
// was never computed) are checked with panics rather than threaded through
// every return. The public API and every planner worker recover them into
// errors.

// A panic raised by fatalf. Anything else that panics, including runtime
// errors, is re-panicked by HandlePlanPanicRecover.
type PlanError struct {
	error
}

func (e PlanError) Unwrap() error {
	return e.error
}

// Panic with a PlanError.
func fatalf(format string, args ...interface{}) {
	panic(PlanError{errors.Errorf(format, args...)})
}

func HandlePlanPanicRecover(r interface{}) error {
	if r != nil {
		if planError, ok := r.(PlanError); ok {
			return planError
		}
		panic(r)
	}
	return nil
}
