package exchanger

import (
	"fmt"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// EffectivenessStage forms q_max = C_min * (t_hot_in - t_cold_in) and the
// effectiveness eps = q_actual / q_max. Under [thermo.ConvMinMax],
// q_actual is keyed to the minimum-capacity stream; under
// [thermo.ConvColdHot] it reproduces the worksheet's hot-side form
// C_h * dT_h. The two diverge when a measured cold flow breaks the
// energy balance.
type EffectivenessStage struct {
	Conv thermo.Convention
}

func (EffectivenessStage) Name() string { return "effectiveness" }

func (st EffectivenessStage) Apply(s thermo.State) (thermo.State, error) {
	s.QMax = s.CMin * (s.THotIn - s.TColdIn)
	if s.QMax <= 0 {
		return s, fmt.Errorf("%w: no driving temperature difference (t_hot_in %g C, t_cold_in %g C)",
			thermo.ErrDegenerate, s.THotIn, s.TColdIn)
	}

	if st.Conv == thermo.ConvColdHot {
		s.QActual = s.CHot * s.DTHot
	} else {
		dt := s.DTCold
		if s.CHot <= s.CCold {
			dt = s.DTHot
		}
		s.QActual = s.CMin * dt
	}

	s.Effectiveness = s.QActual / s.QMax
	if s.Effectiveness <= 0 || s.Effectiveness >= 1 {
		return s, fmt.Errorf("%w: effectiveness %.4f outside (0, 1)", thermo.ErrDegenerate, s.Effectiveness)
	}
	return s, nil
}
