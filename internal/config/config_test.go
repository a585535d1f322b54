package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GetState() != thermo.Defaults() {
		t.Error("default config should reproduce the reference operating point")
	}
	if cfg.Solver.Method != "hybrid" {
		t.Errorf("expected method hybrid, got %s", cfg.Solver.Method)
	}

	conv, err := cfg.GetConvention()
	if err != nil {
		t.Fatalf("GetConvention() error: %v", err)
	}
	if conv != thermo.ConvMinMax {
		t.Errorf("expected minmax convention, got %s", conv)
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossflow.yaml")
	partial := "exchanger:\n  flow_lpm: 1.5\nsolver:\n  method: bisect\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Exchanger.FlowLPM != 1.5 {
		t.Errorf("flow_lpm = %g, want the configured 1.5", cfg.Exchanger.FlowLPM)
	}
	if cfg.Exchanger.THotIn != DefaultTHotIn {
		t.Errorf("t_hot_in = %g, want the default %g", cfg.Exchanger.THotIn, DefaultTHotIn)
	}
	if cfg.Solver.Method != "bisect" {
		t.Errorf("method = %s, want bisect", cfg.Solver.Method)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossflow.yaml")

	cfg := DefaultConfig()
	cfg.Exchanger.ColdMassFlow = 0.0075
	cfg.Convention = "coldhot"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("airstarved")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Exchanger.ColdMassFlow != 0.0075 {
		t.Errorf("expected cold_mass_flow 0.0075, got %g", cfg.Exchanger.ColdMassFlow)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if err := cfg.GetState().Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if _, err := cfg.GetConvention(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 4 {
		t.Fatalf("got %d presets, want 4", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestGetSolverOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.MaxIter = 50
	cfg.Solver.Tolerance = 1e-8

	opts := cfg.GetSolverOptions()
	if opts.MaxIter != 50 || opts.Tolerance != 1e-8 {
		t.Errorf("overrides not applied: %+v", opts)
	}
	if opts.Seed != 1.0 {
		t.Errorf("unset seed should keep its default, got %g", opts.Seed)
	}
	if opts.BracketHi <= opts.BracketLo {
		t.Errorf("bracket defaults missing: %+v", opts)
	}
}

func TestGetMethod(t *testing.T) {
	cfg := DefaultConfig()
	m, err := cfg.GetMethod()
	if err != nil {
		t.Fatalf("GetMethod() error: %v", err)
	}
	if m.Name() != "hybrid" {
		t.Errorf("method = %s, want hybrid", m.Name())
	}

	cfg.Solver.Method = "secant"
	if _, err := cfg.GetMethod(); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestGetFinFallback(t *testing.T) {
	cfg := &Config{}
	f := cfg.GetFin()
	if f.Conductivity != DefaultConductivity {
		t.Errorf("empty fin config should fall back, got k=%g", f.Conductivity)
	}

	cfg.Fin.Length = 12
	if got := cfg.GetFin(); got.Length != 12 || got.Width != DefaultFinWidth {
		t.Errorf("partial fin config mishandled: %+v", got)
	}
}
