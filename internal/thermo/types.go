package thermo

import (
	"fmt"
	"math"
)

// Convention selects which capacity-ratio formulation drives the
// effectiveness and NTU calculations. Lab worksheets commonly form the
// ratio as C_c/C_h and state UA on the cold stream; the effectiveness-NTU
// correlation is defined in terms of C_min/C_max. The two coincide only
// when the cold stream carries the minimum capacity rate.
type Convention int

const (
	// ConvMinMax uses C_min/C_max, keys q_actual to the minimum-capacity
	// stream, and states UA as NTU*C_min. Default.
	ConvMinMax Convention = iota

	// ConvColdHot reproduces the worksheet forms: C_c/C_h ratio,
	// hot-side q_actual, UA as NTU*C_c.
	ConvColdHot
)

func (c Convention) String() string {
	switch c {
	case ConvColdHot:
		return "coldhot"
	default:
		return "minmax"
	}
}

// ParseConvention maps a config/flag string to a Convention.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "", "minmax":
		return ConvMinMax, nil
	case "coldhot":
		return ConvColdHot, nil
	default:
		return ConvMinMax, fmt.Errorf("unknown convention: %s", s)
	}
}

// State is one exchanger operating point. Measured inputs are set by the
// caller, temperature differences by Derive, and the remaining fields by
// the pipeline stages in order. Stages receive the record by value and
// return an augmented copy.
type State struct {
	// Measured inputs.
	FlowLPM      float64 // hot-side volumetric flow [L/min]
	Density      float64 // hot fluid density [kg/m3]
	CpHot        float64 // hot fluid specific heat [kJ/kgK]
	CpCold       float64 // cold fluid specific heat [kJ/kgK]
	THotIn       float64 // [C]
	THotOut      float64 // [C]
	TColdIn      float64 // [C]
	TColdOut     float64 // [C]
	ColdMassFlow float64 // measured cold-side flow [kg/s]; 0 derives it from the balance

	// Derived temperature differences (Derive).
	DTHot  float64 // hot-side temperature drop [K]
	DTCold float64 // cold-side temperature rise [K]
	DT1    float64 // terminal difference THotIn-TColdOut [K], diagnostics only
	DT2    float64 // terminal difference THotOut-TColdIn [K], diagnostics only

	// Computed by the pipeline.
	MassFlowHot   float64 // [kg/s]
	MassFlowCold  float64 // [kg/s]
	Duty          float64 // [W]
	CHot          float64 // [W/K]
	CCold         float64 // [W/K]
	CMin          float64 // [W/K]
	CMax          float64 // [W/K]
	RatioMinMax   float64 // C_min/C_max
	RatioColdHot  float64 // C_c/C_h
	QActual       float64 // [W]
	QMax          float64 // [W]
	Effectiveness float64
	NTU           float64
	UA            float64 // [W/K]
}

// Defaults returns the reference experimental run: 2.10 L/min of water
// cooled from 47.4 to 46.4 C against air warming from 25.5 to 43.0 C.
func Defaults() State {
	s := State{
		FlowLPM:  2.10,
		Density:  1000.0,
		CpHot:    4.18,
		CpCold:   1.005,
		THotIn:   47.4,
		THotOut:  46.4,
		TColdIn:  25.5,
		TColdOut: 43.0,
	}
	return s.Derive()
}

// Derive recomputes the temperature differences from the boundary
// temperatures. Idempotent; call after changing any temperature.
func (s State) Derive() State {
	s.DTHot = s.THotIn - s.THotOut
	s.DTCold = s.TColdOut - s.TColdIn
	s.DT1 = s.THotIn - s.TColdOut
	s.DT2 = s.THotOut - s.TColdIn
	return s
}

func (s State) values() []float64 {
	return []float64{
		s.FlowLPM, s.Density, s.CpHot, s.CpCold,
		s.THotIn, s.THotOut, s.TColdIn, s.TColdOut, s.ColdMassFlow,
		s.DTHot, s.DTCold, s.DT1, s.DT2,
		s.MassFlowHot, s.MassFlowCold, s.Duty,
		s.CHot, s.CCold, s.CMin, s.CMax,
		s.RatioMinMax, s.RatioColdHot,
		s.QActual, s.QMax, s.Effectiveness, s.NTU, s.UA,
	}
}

// IsValid reports whether every field is finite.
func (s State) IsValid() bool {
	for _, v := range s.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate rejects inputs that are undefined for the physics before any
// stage runs. Zero temperature differences are legal here; the stage that
// divides by them reports ErrDegenerate.
func (s State) Validate() error {
	switch {
	case s.FlowLPM <= 0:
		return fmt.Errorf("%w: flow rate must be positive, got %g L/min", ErrInvalidInput, s.FlowLPM)
	case s.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %g kg/m3", ErrInvalidInput, s.Density)
	case s.CpHot <= 0:
		return fmt.Errorf("%w: hot specific heat must be positive, got %g kJ/kgK", ErrInvalidInput, s.CpHot)
	case s.CpCold <= 0:
		return fmt.Errorf("%w: cold specific heat must be positive, got %g kJ/kgK", ErrInvalidInput, s.CpCold)
	case s.ColdMassFlow < 0:
		return fmt.Errorf("%w: measured cold mass flow must be non-negative, got %g kg/s", ErrInvalidInput, s.ColdMassFlow)
	}
	if !s.IsValid() {
		return fmt.Errorf("%w: non-finite value in state", ErrInvalidInput)
	}
	return nil
}

// ParamNames lists the tunable inputs in display order.
var ParamNames = []string{
	"flow", "density", "cp_hot", "cp_cold",
	"t_hot_in", "t_hot_out", "t_cold_in", "t_cold_out", "cold_mass_flow",
}

// Params returns the tunable inputs keyed by name.
func (s State) Params() map[string]float64 {
	return map[string]float64{
		"flow":           s.FlowLPM,
		"density":        s.Density,
		"cp_hot":         s.CpHot,
		"cp_cold":        s.CpCold,
		"t_hot_in":       s.THotIn,
		"t_hot_out":      s.THotOut,
		"t_cold_in":      s.TColdIn,
		"t_cold_out":     s.TColdOut,
		"cold_mass_flow": s.ColdMassFlow,
	}
}

// SetParam sets a tunable input by name. Temperature differences are not
// recomputed; callers re-Derive (the pipeline does so on every run).
func (s *State) SetParam(name string, value float64) error {
	switch name {
	case "flow":
		s.FlowLPM = value
	case "density":
		s.Density = value
	case "cp_hot":
		s.CpHot = value
	case "cp_cold":
		s.CpCold = value
	case "t_hot_in":
		s.THotIn = value
	case "t_hot_out":
		s.THotOut = value
	case "t_cold_in":
		s.TColdIn = value
	case "t_cold_out":
		s.TColdOut = value
	case "cold_mass_flow":
		s.ColdMassFlow = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
