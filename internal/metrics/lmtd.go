package metrics

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// LMTD returns the log-mean of the terminal temperature differences,
// (dt1 - dt2) / ln(dt1/dt2), with the equal-ends limit dt1 == dt2 -> dt1.
// Both differences must be positive; a zero or crossed terminal
// difference has no log mean.
func LMTD(dt1, dt2 float64) (float64, error) {
	if dt1 <= 0 || dt2 <= 0 {
		return 0, fmt.Errorf("%w: terminal differences must be positive (dt1 %g K, dt2 %g K)",
			thermo.ErrDegenerate, dt1, dt2)
	}
	if dt1 == dt2 {
		return dt1, nil
	}
	return (dt1 - dt2) / math.Log(dt1/dt2), nil
}

// Summary crosschecks a completed solve against the LMTD method.
// UALMTD is the counterflow-assumption conductance Duty/LMTD; FImplied
// is the correction factor UALMTD/UA that reconciles it with the
// crossflow conductance.
type Summary struct {
	Closure  float64
	LMTD     float64
	UALMTD   float64
	FImplied float64
}

// Summarize builds the crosscheck for a state produced by a full
// pipeline run.
func Summarize(s thermo.State) (Summary, error) {
	var sum Summary

	closure, err := Closure(s)
	if err != nil {
		return sum, err
	}
	lmtd, err := LMTD(s.DT1, s.DT2)
	if err != nil {
		return sum, err
	}
	if s.UA <= 0 {
		return sum, fmt.Errorf("%w: summary needs a completed solve", thermo.ErrInvalidInput)
	}

	sum.Closure = closure
	sum.LMTD = lmtd
	sum.UALMTD = s.Duty / lmtd
	sum.FImplied = sum.UALMTD / s.UA
	return sum, nil
}
