package exchanger

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/solver"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// CrossflowEffectiveness returns the closed-form effectiveness of a
// crossflow exchanger with both streams unmixed:
//
//	eps = 1 - exp[(1/cr) * NTU^0.22 * (exp(-cr * NTU^0.78) - 1)]
//
// The cr = 0 limit reduces to the single-stream form 1 - exp(-NTU).
// Strictly increasing in ntu, which guarantees the inversion below has a
// unique root.
func CrossflowEffectiveness(ntu, cr float64) float64 {
	if ntu <= 0 {
		return 0
	}
	if cr == 0 {
		return 1 - math.Exp(-ntu)
	}
	a := math.Pow(ntu, 0.22) / cr
	return 1 - math.Exp(a*(math.Exp(-cr*math.Pow(ntu, 0.78))-1))
}

// NTUStage inverts the crossflow correlation for NTU at the computed
// effectiveness and states UA. Under [thermo.ConvMinMax] the capacity
// ratio is C_min/C_max and UA = NTU * C_min; under [thermo.ConvColdHot]
// the ratio is C_c/C_h and UA = NTU * C_c. Last holds the diagnostics of
// the most recent solve, so the stage must not be shared between
// pipelines.
type NTUStage struct {
	Conv   thermo.Convention
	Method solver.Method
	Opts   solver.Options
	Last   solver.Result
}

func (*NTUStage) Name() string { return "ntu" }

func (st *NTUStage) Apply(s thermo.State) (thermo.State, error) {
	cr := s.RatioMinMax
	if st.Conv == thermo.ConvColdHot {
		cr = s.RatioColdHot
	}
	if cr <= 0 || cr > 1 {
		return s, fmt.Errorf("%w: capacity ratio %.4f outside (0, 1]", thermo.ErrDegenerate, cr)
	}

	eps := s.Effectiveness
	res, err := st.Method.Solve(func(x float64) float64 {
		return CrossflowEffectiveness(x, cr) - eps
	}, st.Opts)
	st.Last = res
	if err != nil {
		return s, err
	}

	s.NTU = res.Root
	if st.Conv == thermo.ConvColdHot {
		s.UA = res.Root * s.CCold
	} else {
		s.UA = res.Root * s.CMin
	}
	return s, nil
}
