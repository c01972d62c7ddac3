package shor

import "errors"

var (
	// ErrInvalidArgument is returned for structurally invalid inputs.
	ErrInvalidArgument = errors.New("shor: invalid argument")
	// ErrNoBackend is returned when Factor is called without an Execution Service.
	ErrNoBackend = errors.New("shor: a backend must be supplied to run the quantum algorithm")
)

// The errors below explain why a single measurement yielded no factors.
// They are recovered by the orchestrator and never returned from Factor.
var (
	// ErrNoContinuedFraction is returned for a measurement of zero.
	ErrNoContinuedFraction = errors.New("shor: measured value is <= 0, there are no continued fractions")
	// ErrDenominatorTooLarge is returned when a^(r/2) or a partial quotient exceeds its bound.
	ErrDenominatorTooLarge = errors.New("shor: denominator of continued fraction is too big")
	// ErrExactConvergent is returned when the expansion is exhausted with only trivial factors.
	ErrExactConvergent = errors.New("shor: the continued fractions found exactly the measured fraction")
	// ErrTooManyAttempts is returned when the iteration bound is reached.
	ErrTooManyAttempts = errors.New("shor: it took too many attempts")
)
