package fin

import (
	"errors"
	"math"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func TestEfficiencyReference(t *testing.T) {
	eta, err := NewFin().Efficiency()
	if err != nil {
		t.Fatalf("Efficiency() error: %v", err)
	}
	if math.Abs(eta-0.9789) > 2e-4 {
		t.Errorf("reference fin efficiency = %.6f, want 0.9789", eta)
	}
}

func TestEfficiencyBounds(t *testing.T) {
	tests := []struct {
		name string
		fin  Fin
	}{
		{"reference", *NewFin()},
		{"long thin", Fin{HTC: 100, Conductivity: 401, Width: 16.1, Thickness: 0.11, Length: 50}},
		{"aluminum", Fin{HTC: 60, Conductivity: 237, Width: 10, Thickness: 0.5, Length: 12}},
		{"steel stub", Fin{HTC: 250, Conductivity: 16, Width: 20, Thickness: 1, Length: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eta, err := tt.fin.Efficiency()
			if err != nil {
				t.Fatalf("Efficiency() error: %v", err)
			}
			if eta <= 0 || eta > 1 {
				t.Errorf("efficiency = %.6f, want in (0, 1]", eta)
			}
		})
	}
}

func TestShortFinLimit(t *testing.T) {
	f := NewFin()
	f.Length = 0.001

	eta, err := f.Efficiency()
	if err != nil {
		t.Fatalf("Efficiency() error: %v", err)
	}
	if 1-eta > 1e-4 {
		t.Errorf("short fin efficiency = %.8f, want ~1", eta)
	}
}

func TestEfficiencyDecreasesWithLength(t *testing.T) {
	f := NewFin()
	prev := math.Inf(1)
	for _, length := range []float64{1, 2, 4, 8, 16, 32} {
		f.Length = length
		eta, err := f.Efficiency()
		if err != nil {
			t.Fatalf("Efficiency() at L=%g error: %v", length, err)
		}
		if eta >= prev {
			t.Errorf("efficiency at L=%g mm is %.6f, not below %.6f", length, eta, prev)
		}
		prev = eta
	}
}

func TestEfficiencyInvalidGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fin)
	}{
		{"zero htc", func(f *Fin) { f.HTC = 0 }},
		{"negative conductivity", func(f *Fin) { f.Conductivity = -1 }},
		{"zero width", func(f *Fin) { f.Width = 0 }},
		{"negative thickness", func(f *Fin) { f.Thickness = -0.1 }},
		{"zero length", func(f *Fin) { f.Length = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFin()
			tt.mutate(f)
			if _, err := f.Efficiency(); !errors.Is(err, thermo.ErrInvalidInput) {
				t.Errorf("Efficiency() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestHeatRate(t *testing.T) {
	q, err := NewFin().HeatRate(20)
	if err != nil {
		t.Fatalf("HeatRate() error: %v", err)
	}
	if math.Abs(q-0.2396) > 5e-4 {
		t.Errorf("heat rate = %.6f W, want 0.2396 W", q)
	}

	if _, err := NewFin().HeatRate(-5); !errors.Is(err, thermo.ErrInvalidInput) {
		t.Errorf("HeatRate(-5) error = %v, want ErrInvalidInput", err)
	}
}

func TestProfile(t *testing.T) {
	f := NewFin()

	etas, err := f.Profile(40)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	if len(etas) != 40 {
		t.Fatalf("len(Profile(40)) = %d, want 40", len(etas))
	}

	full, _ := f.Efficiency()
	if math.Abs(etas[39]-full) > 1e-12 {
		t.Errorf("last profile sample = %.9f, want full-length efficiency %.9f", etas[39], full)
	}
	for i := 1; i < len(etas); i++ {
		if etas[i] > etas[i-1] {
			t.Errorf("profile not non-increasing at sample %d: %.9f > %.9f", i, etas[i], etas[i-1])
		}
	}

	if _, err := f.Profile(0); !errors.Is(err, thermo.ErrInvalidInput) {
		t.Errorf("Profile(0) error = %v, want ErrInvalidInput", err)
	}
}
