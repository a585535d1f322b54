package exchanger

import (
	"errors"
	"math"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func TestFlowStage(t *testing.T) {
	tests := []struct {
		name    string
		flowLPM float64
		density float64
		want    float64
	}{
		{"reference water", 2.10, 1000, 0.035},
		{"low flow", 0.5, 1000, 0.0083333},
		{"warm water density", 3.0, 998, 0.0499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := thermo.Defaults()
			s.FlowLPM = tt.flowLPM
			s.Density = tt.density

			out, err := FlowStage{}.Apply(s)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if math.Abs(out.MassFlowHot-tt.want) > 1e-6 {
				t.Errorf("MassFlowHot = %.7f, want %.7f", out.MassFlowHot, tt.want)
			}
		})
	}
}

func TestEnergyStageDerivesColdFlow(t *testing.T) {
	s := thermo.Defaults()
	s, _ = FlowStage{}.Apply(s)

	out, err := EnergyStage{}.Apply(s)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if math.Abs(out.Duty-146.3) > 1e-3 {
		t.Errorf("Duty = %.4f W, want 146.3 W", out.Duty)
	}
	if math.Abs(out.MassFlowCold-0.0083184) > 1e-6 {
		t.Errorf("MassFlowCold = %.7f kg/s, want 0.0083184 kg/s", out.MassFlowCold)
	}
}

func TestEnergyStageMeasuredColdFlow(t *testing.T) {
	s := thermo.Defaults()
	s.ColdMassFlow = 0.0075
	s, _ = FlowStage{}.Apply(s)

	out, err := EnergyStage{}.Apply(s)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if out.MassFlowCold != 0.0075 {
		t.Errorf("MassFlowCold = %g, want the measured 0.0075", out.MassFlowCold)
	}
	if math.Abs(out.Duty-146.3) > 1e-3 {
		t.Errorf("Duty = %.4f W, want 146.3 W", out.Duty)
	}
}

func TestEnergyStageDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*thermo.State)
	}{
		{"hot stream not cooling", func(s *thermo.State) { s.THotOut = s.THotIn }},
		{"hot stream warming", func(s *thermo.State) { s.THotOut = s.THotIn + 2 }},
		{"cold stream not warming", func(s *thermo.State) { s.TColdOut = s.TColdIn }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := thermo.Defaults()
			tt.mutate(&s)
			s = s.Derive()
			s, _ = FlowStage{}.Apply(s)

			if _, err := (EnergyStage{}).Apply(s); !errors.Is(err, thermo.ErrDegenerate) {
				t.Errorf("Apply() error = %v, want ErrDegenerate", err)
			}
		})
	}
}

func TestEnergyStageMeasuredFlowIgnoresColdRise(t *testing.T) {
	s := thermo.Defaults()
	s.ColdMassFlow = 0.0075
	s.TColdOut = s.TColdIn
	s = s.Derive()
	s, _ = FlowStage{}.Apply(s)

	if _, err := (EnergyStage{}).Apply(s); err != nil {
		t.Errorf("Apply() with measured cold flow error = %v, want nil", err)
	}
}

func TestCapacityStage(t *testing.T) {
	s := thermo.Defaults()
	s, _ = FlowStage{}.Apply(s)
	s, _ = EnergyStage{}.Apply(s)

	out, err := CapacityStage{}.Apply(s)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if math.Abs(out.CHot-146.3) > 1e-3 {
		t.Errorf("CHot = %.4f W/K, want 146.3 W/K", out.CHot)
	}
	if math.Abs(out.CCold-8.36) > 1e-3 {
		t.Errorf("CCold = %.4f W/K, want 8.36 W/K", out.CCold)
	}
	if out.CMin != out.CCold || out.CMax != out.CHot {
		t.Errorf("min/max assignment wrong: CMin=%g CMax=%g", out.CMin, out.CMax)
	}
	if math.Abs(out.RatioMinMax-1.0/17.5) > 1e-9 {
		t.Errorf("RatioMinMax = %.9f, want %.9f", out.RatioMinMax, 1.0/17.5)
	}
	if math.Abs(out.RatioColdHot-out.RatioMinMax) > 1e-9 {
		t.Errorf("conventions should coincide on a balance-derived run: %.9f vs %.9f",
			out.RatioColdHot, out.RatioMinMax)
	}
}

func TestCapacityStageZeroFlow(t *testing.T) {
	s := thermo.Defaults()
	s, _ = FlowStage{}.Apply(s)
	// cold flow never computed

	if _, err := (CapacityStage{}).Apply(s); !errors.Is(err, thermo.ErrDegenerate) {
		t.Errorf("Apply() error = %v, want ErrDegenerate", err)
	}
}

func applyThrough(t *testing.T, s thermo.State, stages ...Stage) thermo.State {
	t.Helper()
	var err error
	for _, st := range stages {
		s, err = st.Apply(s)
		if err != nil {
			t.Fatalf("stage %s: %v", st.Name(), err)
		}
	}
	return s
}

func TestEffectivenessStageReference(t *testing.T) {
	s := applyThrough(t, thermo.Defaults(), FlowStage{}, EnergyStage{}, CapacityStage{})

	for _, conv := range []thermo.Convention{thermo.ConvMinMax, thermo.ConvColdHot} {
		t.Run(conv.String(), func(t *testing.T) {
			out, err := EffectivenessStage{Conv: conv}.Apply(s)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if math.Abs(out.QMax-183.084) > 1e-3 {
				t.Errorf("QMax = %.4f W, want 183.084 W", out.QMax)
			}
			if math.Abs(out.QActual-146.3) > 1e-3 {
				t.Errorf("QActual = %.4f W, want 146.3 W", out.QActual)
			}
			if math.Abs(out.Effectiveness-0.7990868) > 1e-6 {
				t.Errorf("Effectiveness = %.7f, want 0.7990868", out.Effectiveness)
			}
		})
	}
}

func TestEffectivenessStageConventionsDiverge(t *testing.T) {
	base := thermo.Defaults()
	base.ColdMassFlow = 0.0075 // below the balance-derived 0.0083 kg/s
	s := applyThrough(t, base, FlowStage{}, EnergyStage{}, CapacityStage{})

	mm, err := EffectivenessStage{Conv: thermo.ConvMinMax}.Apply(s)
	if err != nil {
		t.Fatalf("minmax Apply() error: %v", err)
	}
	ch, err := EffectivenessStage{Conv: thermo.ConvColdHot}.Apply(s)
	if err != nil {
		t.Fatalf("coldhot Apply() error: %v", err)
	}

	if math.Abs(mm.QActual-131.906) > 1e-3 {
		t.Errorf("minmax QActual = %.4f W, want 131.906 W", mm.QActual)
	}
	if math.Abs(ch.QActual-146.3) > 1e-3 {
		t.Errorf("coldhot QActual = %.4f W, want 146.3 W", ch.QActual)
	}
	if ch.Effectiveness <= mm.Effectiveness {
		t.Errorf("coldhot effectiveness %.4f should exceed minmax %.4f on an air-starved run",
			ch.Effectiveness, mm.Effectiveness)
	}
}

func TestEffectivenessStageDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*thermo.State)
	}{
		{"no driving difference", func(s *thermo.State) { s.TColdIn = s.THotIn; s.TColdOut = s.THotIn + 0.6 }},
		{"cold outlet above hot inlet", func(s *thermo.State) { s.TColdOut = s.THotIn + 0.6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := thermo.Defaults()
			tt.mutate(&s)
			s = s.Derive()
			s = applyThrough(t, s, FlowStage{}, EnergyStage{}, CapacityStage{})

			if _, err := (EffectivenessStage{}).Apply(s); !errors.Is(err, thermo.ErrDegenerate) {
				t.Errorf("Apply() error = %v, want ErrDegenerate", err)
			}
		})
	}
}
