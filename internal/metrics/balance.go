package metrics

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Closure returns the relative energy-balance closure |Q_h - Q_c| / Q_h
// of a completed operating point. Zero (to rounding) when the cold flow
// was derived from the balance; positive when a measured cold flow
// disagrees with it.
func Closure(s thermo.State) (float64, error) {
	qHot := s.CHot * s.DTHot
	if qHot <= 0 {
		return 0, fmt.Errorf("%w: closure needs a completed solve", thermo.ErrInvalidInput)
	}
	qCold := s.CCold * s.DTCold
	return math.Abs(qHot-qCold) / qHot, nil
}
