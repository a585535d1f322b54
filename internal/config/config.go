package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndrewTrepagnier/crossflowlab/internal/fin"
	"github.com/AndrewTrepagnier/crossflowlab/internal/solver"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

const (
	DefaultFlowLPM  = 2.10
	DefaultDensity  = 1000.0
	DefaultCpHot    = 4.18
	DefaultCpCold   = 1.005
	DefaultTHotIn   = 47.4
	DefaultTHotOut  = 46.4
	DefaultTColdIn  = 25.5
	DefaultTColdOut = 43.0

	DefaultHTC          = 100.0
	DefaultConductivity = 401.0
	DefaultFinWidth     = 16.1
	DefaultFinThickness = 0.11
	DefaultFinLength    = 3.72

	DefaultMethod = "hybrid"
)

type Config struct {
	Convention string          `yaml:"convention"`
	Exchanger  ExchangerConfig `yaml:"exchanger"`
	Fin        FinConfig       `yaml:"fin"`
	Solver     SolverConfig    `yaml:"solver"`
}

type ExchangerConfig struct {
	FlowLPM      float64 `yaml:"flow_lpm"`
	Density      float64 `yaml:"density"`
	CpHot        float64 `yaml:"cp_hot"`
	CpCold       float64 `yaml:"cp_cold"`
	THotIn       float64 `yaml:"t_hot_in"`
	THotOut      float64 `yaml:"t_hot_out"`
	TColdIn      float64 `yaml:"t_cold_in"`
	TColdOut     float64 `yaml:"t_cold_out"`
	ColdMassFlow float64 `yaml:"cold_mass_flow"`
}

type FinConfig struct {
	HTC          float64 `yaml:"htc"`
	Conductivity float64 `yaml:"conductivity"`
	Width        float64 `yaml:"width"`
	Thickness    float64 `yaml:"thickness"`
	Length       float64 `yaml:"length"`
}

type SolverConfig struct {
	Method    string  `yaml:"method"`
	Seed      float64 `yaml:"seed"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

func DefaultConfig() *Config {
	return &Config{
		Exchanger: ExchangerConfig{
			FlowLPM:  DefaultFlowLPM,
			Density:  DefaultDensity,
			CpHot:    DefaultCpHot,
			CpCold:   DefaultCpCold,
			THotIn:   DefaultTHotIn,
			THotOut:  DefaultTHotOut,
			TColdIn:  DefaultTColdIn,
			TColdOut: DefaultTColdOut,
		},
		Fin: FinConfig{
			HTC:          DefaultHTC,
			Conductivity: DefaultConductivity,
			Width:        DefaultFinWidth,
			Thickness:    DefaultFinThickness,
			Length:       DefaultFinLength,
		},
		Solver: SolverConfig{
			Method: DefaultMethod,
		},
	}
}

// Load reads a config file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetState builds the operating point, with the temperature differences
// derived.
func (c *Config) GetState() thermo.State {
	s := thermo.State{
		FlowLPM:      c.Exchanger.FlowLPM,
		Density:      c.Exchanger.Density,
		CpHot:        c.Exchanger.CpHot,
		CpCold:       c.Exchanger.CpCold,
		THotIn:       c.Exchanger.THotIn,
		THotOut:      c.Exchanger.THotOut,
		TColdIn:      c.Exchanger.TColdIn,
		TColdOut:     c.Exchanger.TColdOut,
		ColdMassFlow: c.Exchanger.ColdMassFlow,
	}
	return s.Derive()
}

// GetFin builds the fin geometry, falling back to the reference fin for
// any field left unset.
func (c *Config) GetFin() *fin.Fin {
	f := fin.NewFin()
	if c.Fin.HTC > 0 {
		f.HTC = c.Fin.HTC
	}
	if c.Fin.Conductivity > 0 {
		f.Conductivity = c.Fin.Conductivity
	}
	if c.Fin.Width > 0 {
		f.Width = c.Fin.Width
	}
	if c.Fin.Thickness > 0 {
		f.Thickness = c.Fin.Thickness
	}
	if c.Fin.Length > 0 {
		f.Length = c.Fin.Length
	}
	return f
}

// GetSolverOptions overlays the configured solver settings on the
// defaults.
func (c *Config) GetSolverOptions() solver.Options {
	opts := solver.DefaultOptions()
	if c.Solver.Seed > 0 {
		opts.Seed = c.Solver.Seed
	}
	if c.Solver.Tolerance > 0 {
		opts.Tolerance = c.Solver.Tolerance
	}
	if c.Solver.MaxIter > 0 {
		opts.MaxIter = c.Solver.MaxIter
	}
	return opts
}

func (c *Config) GetMethod() (solver.Method, error) {
	name := c.Solver.Method
	if name == "" {
		name = DefaultMethod
	}
	return solver.New(name)
}

func (c *Config) GetConvention() (thermo.Convention, error) {
	return thermo.ParseConvention(c.Convention)
}
