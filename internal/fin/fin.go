package fin

import (
	"fmt"
	"math"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Fin is a single straight rectangular fin. Geometry is entered in mm,
// matching the measurement sheets, and normalized to meters internally.
// Independent of the exchanger pipeline.
type Fin struct {
	HTC          float64 // convective coefficient h [W/m2K]
	Conductivity float64 // fin material k [W/mK]
	Width        float64 // [mm]
	Thickness    float64 // [mm]
	Length       float64 // [mm]
}

// NewFin returns the reference copper fin.
func NewFin() *Fin {
	return &Fin{
		HTC:          100.0,
		Conductivity: 401.0,
		Width:        16.1,
		Thickness:    0.11,
		Length:       3.72,
	}
}

func (f *Fin) validate() error {
	switch {
	case f.HTC <= 0:
		return fmt.Errorf("%w: convective coefficient must be positive, got %g", thermo.ErrInvalidInput, f.HTC)
	case f.Conductivity <= 0:
		return fmt.Errorf("%w: conductivity must be positive, got %g", thermo.ErrInvalidInput, f.Conductivity)
	case f.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %g mm", thermo.ErrInvalidInput, f.Width)
	case f.Thickness <= 0:
		return fmt.Errorf("%w: thickness must be positive, got %g mm", thermo.ErrInvalidInput, f.Thickness)
	case f.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %g mm", thermo.ErrInvalidInput, f.Length)
	}
	return nil
}

// Efficiency returns eta_f = tanh(m*Lc)/(m*Lc) with the adiabatic-tip
// correction Lc = L + t/2 and m = sqrt(h*P/(k*Ac)). Bounded in (0, 1];
// tends to 1 for a short, highly conductive fin.
func (f *Fin) Efficiency() (float64, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}

	w := f.Width / 1000
	t := f.Thickness / 1000
	l := f.Length / 1000

	perimeter := 2*w + 2*t
	area := w * t
	m := math.Sqrt(f.HTC * perimeter / (f.Conductivity * area))
	lc := l + t/2

	mlc := m * lc
	return math.Tanh(mlc) / mlc, nil
}

// HeatRate returns the fin dissipation q = eta_f * h * A_fin * dT for a
// base-to-ambient temperature difference dT, with A_fin = P * Lc.
func (f *Fin) HeatRate(dT float64) (float64, error) {
	eta, err := f.Efficiency()
	if err != nil {
		return 0, err
	}
	if dT < 0 {
		return 0, fmt.Errorf("%w: temperature difference must be non-negative, got %g", thermo.ErrInvalidInput, dT)
	}

	w := f.Width / 1000
	t := f.Thickness / 1000
	lc := f.Length/1000 + t/2
	area := (2*w + 2*t) * lc

	return eta * f.HTC * area * dT, nil
}

// Profile samples the efficiency over fin lengths (0, Length], n evenly
// spaced points ending at the actual length. Feeds the profile plot.
func (f *Fin) Profile(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: profile needs at least one sample, got %d", thermo.ErrInvalidInput, n)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	etas := make([]float64, n)
	for i := 0; i < n; i++ {
		sample := *f
		sample.Length = f.Length * float64(i+1) / float64(n)
		eta, err := sample.Efficiency()
		if err != nil {
			return nil, err
		}
		etas[i] = eta
	}
	return etas, nil
}
