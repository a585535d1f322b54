package analysis

import (
	"context"
	"fmt"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// SweepPoint is one evaluated operating point of a sweep. State is only
// meaningful when Err is nil.
type SweepPoint struct {
	Value float64
	State thermo.State
	Err   error
}

// Sweep varies one named input over [Min, Max] in Steps evenly spaced
// evaluations.
type Sweep struct {
	Param   string
	Min     float64
	Max     float64
	Steps   int
	Workers int
}

// Run solves every point of the sweep against the base operating point.
// Points keep sweep order; failures stay in their slot.
func (sw Sweep) Run(ctx context.Context, base thermo.State, factory func() *exchanger.Pipeline) ([]SweepPoint, error) {
	if sw.Steps < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 steps, got %d", thermo.ErrInvalidInput, sw.Steps)
	}
	if sw.Max <= sw.Min {
		return nil, fmt.Errorf("%w: sweep range [%g, %g] is empty", thermo.ErrInvalidInput, sw.Min, sw.Max)
	}
	if _, ok := base.Params()[sw.Param]; !ok {
		return nil, fmt.Errorf("unknown param: %s", sw.Param)
	}

	values := make([]float64, sw.Steps)
	states := make([]thermo.State, sw.Steps)
	step := (sw.Max - sw.Min) / float64(sw.Steps-1)
	for i := range states {
		values[i] = sw.Min + float64(i)*step
		s := base
		s.SetParam(sw.Param, values[i])
		states[i] = s
	}

	items := exchanger.NewBatch(sw.Workers, factory).Run(ctx, states)

	points := make([]SweepPoint, sw.Steps)
	for i, it := range items {
		points[i] = SweepPoint{Value: values[i], Err: it.Err}
		if it.Err == nil {
			points[i].State = it.Result.State
		}
	}
	return points, nil
}
