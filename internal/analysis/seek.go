package analysis

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

const (
	seekMaxIter   = 100
	seekTolerance = 1e-9
)

// SeekResult is a goal-seek outcome: the input value whose solved
// effectiveness meets the target, plus the full state at that value.
type SeekResult struct {
	Param      string
	Value      float64
	State      thermo.State
	Iterations int
	Residual   float64
}

// SeekEffectiveness bisects one named input on [lo, hi] until the solved
// effectiveness meets target. Unlike the NTU inversion this residual can
// fail to evaluate (the point may be degenerate), so the bracketing loop
// carries errors instead of using a solver.Func.
func SeekEffectiveness(base thermo.State, param string, target, lo, hi float64, p *exchanger.Pipeline) (*SeekResult, error) {
	if target <= 0 || target >= 1 {
		return nil, fmt.Errorf("%w: target effectiveness %g outside (0, 1)", thermo.ErrInvalidInput, target)
	}
	if hi <= lo {
		return nil, fmt.Errorf("%w: seek range [%g, %g] is empty", thermo.ErrInvalidInput, lo, hi)
	}

	eval := func(v float64) (thermo.State, float64, error) {
		s := base
		if err := s.SetParam(param, v); err != nil {
			return s, 0, err
		}
		res, err := p.Run(s)
		if err != nil {
			return s, 0, err
		}
		return res.State, res.State.Effectiveness - target, nil
	}

	sLo, rLo, err := eval(lo)
	if err != nil {
		return nil, fmt.Errorf("seek endpoint %s=%g: %w", param, lo, err)
	}
	sHi, rHi, err := eval(hi)
	if err != nil {
		return nil, fmt.Errorf("seek endpoint %s=%g: %w", param, hi, err)
	}

	if math.Abs(rLo) < seekTolerance {
		return &SeekResult{Param: param, Value: lo, State: sLo, Residual: math.Abs(rLo)}, nil
	}
	if math.Abs(rHi) < seekTolerance {
		return &SeekResult{Param: param, Value: hi, State: sHi, Residual: math.Abs(rHi)}, nil
	}
	if rLo*rHi > 0 {
		return nil, fmt.Errorf("%w: target %.3f not bracketed by %s in [%g, %g]",
			thermo.ErrNoConvergence, target, param, lo, hi)
	}

	var (
		mid   float64
		sMid  thermo.State
		rMid  float64
		iters int
	)
	for i := 0; i < seekMaxIter; i++ {
		iters = i + 1
		mid = 0.5 * (lo + hi)
		sMid, rMid, err = eval(mid)
		if err != nil {
			return nil, fmt.Errorf("seek at %s=%g: %w", param, mid, err)
		}
		if math.Abs(rMid) < seekTolerance {
			return &SeekResult{Param: param, Value: mid, State: sMid, Iterations: iters, Residual: math.Abs(rMid)}, nil
		}
		if rLo*rMid < 0 {
			hi = mid
		} else {
			lo, rLo = mid, rMid
		}
		if (hi-lo)/2 < 1e-15*(math.Abs(lo)+math.Abs(hi)+1) {
			break
		}
	}

	return nil, &thermo.SolveError{
		Method:     "seek",
		Iterations: iters,
		Residual:   math.Abs(rMid),
		Wrapped:    thermo.ErrNoConvergence,
	}
}
