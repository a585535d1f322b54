package exchanger

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// CapacityStage builds the stream capacity rates C = m_dot * cp and both
// capacity-ratio formulations. RatioMinMax is always in (0, 1];
// RatioColdHot exceeds 1 whenever the cold stream carries the larger
// capacity rate, which the NTU stage rejects under that convention.
type CapacityStage struct{}

func (CapacityStage) Name() string { return "capacity" }

func (CapacityStage) Apply(s thermo.State) (thermo.State, error) {
	s.CHot = s.MassFlowHot * s.CpHot * 1000
	s.CCold = s.MassFlowCold * s.CpCold * 1000
	s.CMin = math.Min(s.CHot, s.CCold)
	s.CMax = math.Max(s.CHot, s.CCold)
	if s.CMin <= 0 {
		return s, fmt.Errorf("%w: capacity rate %.4g W/K is not positive", thermo.ErrDegenerate, s.CMin)
	}
	s.RatioMinMax = s.CMin / s.CMax
	s.RatioColdHot = s.CCold / s.CHot
	return s, nil
}
