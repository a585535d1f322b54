package exchanger

import "github.com/AndrewTrepagnier/crossflowlab/internal/thermo"

// FlowStage converts the hot-side rotameter reading to a mass flow:
// m_dot = rho * V_dot / 60000, with V_dot in L/min and rho in kg/m3.
type FlowStage struct{}

func (FlowStage) Name() string { return "flow" }

func (FlowStage) Apply(s thermo.State) (thermo.State, error) {
	s.MassFlowHot = s.Density * s.FlowLPM / 60000.0
	return s, nil
}
