package solver

import (
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Newton iterates x -= f(x)/f'(x) from the seed, with the derivative
// estimated by forward difference. Fast near a good seed; reports failure
// on a vanishing derivative, a non-finite iterate, or budget exhaustion.
type Newton struct{}

func NewNewton() *Newton {
	return &Newton{}
}

func (n *Newton) Name() string { return "newton" }

func (n *Newton) Solve(f Func, opts Options) (Result, error) {
	x := opts.Seed
	var res Result

	for i := 0; i < opts.MaxIter; i++ {
		res.Iterations = i + 1

		fx := f(x)
		if math.Abs(fx) < opts.Tolerance {
			res.Root = x
			res.Residual = math.Abs(fx)
			res.Converged = true
			return res, nil
		}

		h := opts.Step * math.Max(math.Abs(x), 1.0)
		df := (f(x+h) - fx) / h
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			res.Root = x
			res.Residual = math.Abs(fx)
			return res, &thermo.SolveError{
				Method:     n.Name(),
				Iterations: res.Iterations,
				Residual:   res.Residual,
				Wrapped:    thermo.ErrNoConvergence,
			}
		}

		x -= fx / df
		if math.IsNaN(x) || math.IsInf(x, 0) {
			res.Root = x
			res.Residual = math.Abs(fx)
			return res, &thermo.SolveError{
				Method:     n.Name(),
				Iterations: res.Iterations,
				Residual:   res.Residual,
				Wrapped:    thermo.ErrNoConvergence,
			}
		}
	}

	res.Root = x
	res.Residual = math.Abs(f(x))
	return res, &thermo.SolveError{
		Method:     n.Name(),
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Wrapped:    thermo.ErrNoConvergence,
	}
}
