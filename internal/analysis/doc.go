// Package analysis studies how exchanger performance responds to its
// inputs.
//
//   - [Sweep]: map one input over a range, point by point
//   - [Sensitivities]: rank the local influence of every input
//   - [SeekEffectiveness]: find the input value that hits a target
//
// All three evaluate complete pipeline runs; points that land on a
// degenerate operating region carry their error instead of aborting the
// whole analysis.
package analysis
