package solver

// Func is a scalar residual function. Roots are sought on
// [Options.BracketLo, +inf).
type Func func(x float64) float64

// Options controls a solve. Zero values are not meaningful; start from
// DefaultOptions.
type Options struct {
	Seed      float64 // starting point for local methods
	Tolerance float64 // convergence threshold on |f(x)|
	MaxIter   int     // iteration budget, guarantees termination
	Step      float64 // relative step for the forward-difference derivative
	BracketLo float64 // domain floor and lower bracket bound
	BracketHi float64 // initial upper bracket bound, expanded geometrically
}

func DefaultOptions() Options {
	return Options{
		Seed:      1.0,
		Tolerance: 1e-10,
		MaxIter:   100,
		Step:      1e-6,
		BracketLo: 1e-12,
		BracketHi: 10.0,
	}
}

// Result reports a solve outcome. Residual is |f(Root)| at exit whether or
// not the solve converged.
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
	Converged  bool
	Bracketed  bool // root was produced by the bracketing path
}

// Method is a scalar root-finding strategy.
type Method interface {
	Solve(f Func, opts Options) (Result, error)
	Name() string
}
