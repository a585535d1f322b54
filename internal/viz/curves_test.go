package viz

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func TestFamilySampling(t *testing.T) {
	cs, err := Family([]float64{0, 0.5, 1}, 5, 51)
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	if len(cs.NTU) != 51 || len(cs.Series) != 3 {
		t.Fatalf("got %d samples x %d series, want 51 x 3", len(cs.NTU), len(cs.Series))
	}
	if cs.NTU[0] != 0 || math.Abs(cs.NTU[50]-5) > 1e-12 {
		t.Fatalf("NTU grid spans [%g, %g], want [0, 5]", cs.NTU[0], cs.NTU[50])
	}
	if cs.Labels[1] != "Cr=0.50" {
		t.Errorf("label = %q, want Cr=0.50", cs.Labels[1])
	}

	// The zero-ratio series is the single stream limit.
	for j, ntu := range cs.NTU {
		want := 1 - math.Exp(-ntu)
		if math.Abs(cs.Series[0][j]-want) > 1e-12 {
			t.Fatalf("Series[0][%d] = %g, want %g", j, cs.Series[0][j], want)
		}
	}

	// Higher capacity ratio never helps effectiveness.
	for j := 1; j < len(cs.NTU); j++ {
		if cs.Series[1][j] > cs.Series[0][j] || cs.Series[2][j] > cs.Series[1][j] {
			t.Fatalf("series out of order at NTU=%g: %g, %g, %g",
				cs.NTU[j], cs.Series[0][j], cs.Series[1][j], cs.Series[2][j])
		}
	}

	for i, series := range cs.Series {
		for j, v := range series {
			if v < 0 || v > 1 {
				t.Fatalf("Series[%d][%d] = %g outside [0, 1]", i, j, v)
			}
		}
	}
}

func TestFamilyValidation(t *testing.T) {
	tests := []struct {
		name    string
		ratios  []float64
		maxNTU  float64
		samples int
	}{
		{"no ratios", nil, 5, 10},
		{"zero max ntu", []float64{0.5}, 0, 10},
		{"one sample", []float64{0.5}, 5, 1},
		{"negative ratio", []float64{-0.1}, 5, 10},
		{"ratio above one", []float64{1.5}, 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Family(tt.ratios, tt.maxNTU, tt.samples); !errors.Is(err, thermo.ErrInvalidInput) {
				t.Errorf("Family() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFamilyRender(t *testing.T) {
	cs, err := Family([]float64{0.25, 0.75}, 4, 40)
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	out := cs.Render(40, 10)
	if !strings.Contains(out, "effectiveness vs NTU") {
		t.Errorf("chart caption missing:\n%s", out)
	}
	if !strings.Contains(out, "Cr=0.25") || !strings.Contains(out, "Cr=0.75") {
		t.Errorf("chart caption missing ratio labels:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 10 {
		t.Errorf("chart has %d lines, want at least the plot height", lines)
	}
}

func TestCurveSetDraw(t *testing.T) {
	cs, err := Family([]float64{0}, 5, 101)
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	c := NewCanvas(20, 10)
	cs.Draw(c)

	// Curve starts at the origin, bottom left of the canvas.
	if c.Grid[c.Height-1][0] == 0x2800 {
		t.Error("origin cell empty after Draw")
	}
	// At NTU=5 the single stream limit is above 0.99, top right.
	if c.Grid[0][c.Width-1] == 0x2800 {
		t.Error("top right cell empty after Draw")
	}

	set := 0
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				set++
			}
		}
	}
	if set < c.Width {
		t.Errorf("only %d cells set, curve should cross the full width", set)
	}
}

func TestCurveSetMark(t *testing.T) {
	cs, err := Family([]float64{0.5}, 4, 41)
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	c := NewCanvas(20, 10)
	cs.Mark(c, 2, 0.5)
	// (ntu=2, eff=0.5) maps to the canvas center.
	if c.Grid[4][9] == 0x2800 && c.Grid[4][10] == 0x2800 {
		t.Error("marker not drawn near canvas center")
	}
}

func TestSweepChart(t *testing.T) {
	values := []float64{0.5, 1.0, 1.5, 2.0}
	eff := []float64{0.2, 0.4, 0.6, 0.8}
	out, err := SweepChart("flow", values, eff, 30, 8)
	if err != nil {
		t.Fatalf("SweepChart: %v", err)
	}
	if !strings.Contains(out, "effectiveness vs flow") {
		t.Errorf("caption missing:\n%s", out)
	}

	if _, err := SweepChart("flow", values, eff[:3], 30, 8); !errors.Is(err, thermo.ErrInvalidInput) {
		t.Errorf("mismatched slices: error = %v, want ErrInvalidInput", err)
	}
	if _, err := SweepChart("flow", values[:1], eff[:1], 30, 8); !errors.Is(err, thermo.ErrInvalidInput) {
		t.Errorf("single point: error = %v, want ErrInvalidInput", err)
	}
}
