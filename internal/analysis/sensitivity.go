package analysis

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Sensitivity is the local response of the solved outputs to one input,
// taken at Base. Err is set when no difference could be formed around
// the base point.
type Sensitivity struct {
	Param          string
	Base           float64
	DEffectiveness float64
	DNTU           float64
	DUA            float64
	DDuty          float64
	Err            error
}

// Sensitivities differentiates the solved outputs with respect to each
// named input, using a central difference with relative step rel.
// A side that fails to solve degrades the entry to a one-sided
// difference; an input with no solvable side carries the error.
func Sensitivities(base thermo.State, params []string, rel float64, p *exchanger.Pipeline) ([]Sensitivity, error) {
	if rel <= 0 {
		return nil, fmt.Errorf("%w: relative step must be positive, got %g", thermo.ErrInvalidInput, rel)
	}
	if len(params) == 0 {
		params = thermo.ParamNames
	}

	center, err := p.Run(base)
	if err != nil {
		return nil, err
	}

	out := make([]Sensitivity, 0, len(params))
	for _, name := range params {
		v, ok := base.Params()[name]
		if !ok {
			return nil, fmt.Errorf("unknown param: %s", name)
		}
		h := rel * math.Max(math.Abs(v), 1)

		sense := Sensitivity{Param: name, Base: v}

		hi := base
		hi.SetParam(name, v+h)
		rHi, errHi := p.Run(hi)

		lo := base
		lo.SetParam(name, v-h)
		rLo, errLo := p.Run(lo)

		switch {
		case errHi == nil && errLo == nil:
			sense.fill(rHi.State, rLo.State, 2*h)
		case errHi == nil:
			sense.fill(rHi.State, center.State, h)
		case errLo == nil:
			sense.fill(center.State, rLo.State, h)
		default:
			sense.Err = errHi
		}
		out = append(out, sense)
	}
	return out, nil
}

func (s *Sensitivity) fill(upper, lower thermo.State, span float64) {
	s.DEffectiveness = (upper.Effectiveness - lower.Effectiveness) / span
	s.DNTU = (upper.NTU - lower.NTU) / span
	s.DUA = (upper.UA - lower.UA) / span
	s.DDuty = (upper.Duty - lower.Duty) / span
}
