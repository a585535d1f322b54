package exchanger

import (
	"fmt"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// EnergyStage forms the duty released by the hot stream and the cold-side
// mass flow. The duty is Q = m_dot_h * cp_h * dT_h with cp converted from
// kJ/kgK to J/kgK. A measured cold flow is taken as-is; otherwise the
// cold flow is derived from the steady-state balance Q = m_dot_c * cp_c * dT_c.
type EnergyStage struct{}

func (EnergyStage) Name() string { return "energy" }

func (EnergyStage) Apply(s thermo.State) (thermo.State, error) {
	if s.DTHot <= 0 {
		return s, fmt.Errorf("%w: hot stream must cool (t_hot_in %g C, t_hot_out %g C)",
			thermo.ErrDegenerate, s.THotIn, s.THotOut)
	}
	s.Duty = s.MassFlowHot * s.CpHot * 1000 * s.DTHot

	if s.ColdMassFlow > 0 {
		s.MassFlowCold = s.ColdMassFlow
		return s, nil
	}
	if s.DTCold <= 0 {
		return s, fmt.Errorf("%w: cold stream must warm to derive its flow (t_cold_in %g C, t_cold_out %g C)",
			thermo.ErrDegenerate, s.TColdIn, s.TColdOut)
	}
	s.MassFlowCold = s.Duty / (s.CpCold * 1000 * s.DTCold)
	return s, nil
}
