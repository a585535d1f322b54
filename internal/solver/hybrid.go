package solver

// Hybrid tries Newton from the seed and certifies the outcome; on any
// failure, or a root outside the domain, it falls back to bracketed
// bisection. Default method for the NTU inversion.
type Hybrid struct {
	newton *Newton
	bisect *Bisect
}

func NewHybrid() *Hybrid {
	return &Hybrid{newton: NewNewton(), bisect: NewBisect()}
}

func (h *Hybrid) Name() string { return "hybrid" }

func (h *Hybrid) Solve(f Func, opts Options) (Result, error) {
	res, err := h.newton.Solve(f, opts)
	if err == nil && res.Converged && res.Root >= opts.BracketLo {
		return res, nil
	}
	return h.bisect.Solve(f, opts)
}
