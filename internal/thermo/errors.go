package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for the calculation pipeline.
var (
	// ErrInvalidInput indicates a non-positive or non-finite physical
	// quantity that is undefined for the calculation.
	ErrInvalidInput = errors.New("thermo: invalid input")

	// ErrDegenerate indicates a zero temperature difference or equal
	// inlet temperatures: a measurement problem, reported distinctly
	// from generic math errors.
	ErrDegenerate = errors.New("thermo: degenerate operating point")

	// ErrNoConvergence indicates the NTU root-finder exhausted its
	// iteration budget or produced a negative/non-finite root.
	ErrNoConvergence = errors.New("thermo: solver did not converge")
)

// StageError wraps a pipeline failure with the stage that produced it.
type StageError struct {
	Stage   string
	Wrapped error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Wrapped)
}

func (e *StageError) Unwrap() error {
	return e.Wrapped
}

// SolveError wraps a root-finder failure with its final diagnostics.
type SolveError struct {
	Method     string
	Iterations int
	Residual   float64
	Wrapped    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (%s, %d iterations, residual %.3e)",
		e.Wrapped, e.Method, e.Iterations, e.Residual)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
