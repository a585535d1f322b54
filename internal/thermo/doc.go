// Package thermo provides core types for cross-flow heat exchanger analysis.
//
// The package defines the operating-point record and the error taxonomy
// shared by the calculation pipeline:
//
//   - [State]: one exchanger operating point (measured inputs, derived
//     temperature differences, progressively computed performance fields)
//   - [Convention]: selection between the capacity-ratio formulations
//   - [StageError]: pipeline failure wrapped with the stage name
//   - [SolveError]: root-finder failure with iteration diagnostics
//
// # Example
//
//	s := thermo.Defaults()
//	s.THotIn = 48.0
//	s = s.Derive()
//	if err := s.Validate(); err != nil {
//	    // measurement or unit problem, reported before any computation
//	}
//
// # Thread Safety
//
// State is a value type and is never shared: every evaluation operates on
// its own copy, so concurrent evaluations need no locking.
package thermo
