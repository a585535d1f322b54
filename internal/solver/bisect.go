package solver

import (
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// maxExpand caps the geometric bracket expansion; 50 doublings of the
// initial upper bound covers any physically plausible root.
const maxExpand = 50

// Bisect brackets the root by doubling the upper bound until the residual
// changes sign, then bisects. Slow but certain for any continuous f with
// a sign change on the domain.
type Bisect struct{}

func NewBisect() *Bisect {
	return &Bisect{}
}

func (b *Bisect) Name() string { return "bisect" }

func (b *Bisect) Solve(f Func, opts Options) (Result, error) {
	lo, hi := opts.BracketLo, opts.BracketHi
	res := Result{Bracketed: true}

	flo := f(lo)
	if math.Abs(flo) < opts.Tolerance {
		res.Root = lo
		res.Residual = math.Abs(flo)
		res.Converged = true
		return res, nil
	}

	fhi := f(hi)
	for i := 0; flo*fhi > 0 && i < maxExpand; i++ {
		hi *= 2
		fhi = f(hi)
	}
	if flo*fhi > 0 || math.IsNaN(fhi) {
		res.Root = hi
		res.Residual = math.Abs(fhi)
		return res, &thermo.SolveError{
			Method:     b.Name(),
			Iterations: res.Iterations,
			Residual:   res.Residual,
			Wrapped:    thermo.ErrNoConvergence,
		}
	}

	var mid, fmid float64
	for i := 0; i < opts.MaxIter; i++ {
		res.Iterations = i + 1

		mid = 0.5 * (lo + hi)
		fmid = f(mid)

		if math.Abs(fmid) < opts.Tolerance {
			res.Root = mid
			res.Residual = math.Abs(fmid)
			res.Converged = true
			return res, nil
		}

		// Interval collapsed to machine resolution without meeting the
		// residual tolerance; exit and report the honest residual.
		if (hi-lo)/2 < 1e-15*(math.Abs(lo)+math.Abs(hi)+1) {
			break
		}

		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}

	res.Root = mid
	res.Residual = math.Abs(fmid)
	return res, &thermo.SolveError{
		Method:     b.Name(),
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Wrapped:    thermo.ErrNoConvergence,
	}
}
