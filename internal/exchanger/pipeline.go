package exchanger

import (
	"time"

	"github.com/AndrewTrepagnier/crossflowlab/internal/solver"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Stage is one step of the performance calculation. Implementations
// receive the state by value and return an augmented copy; they never
// mutate fields owned by earlier stages.
type Stage interface {
	Name() string
	Apply(s thermo.State) (thermo.State, error)
}

// Pipeline runs the stages in their physical dependency order: flow,
// energy, capacity, effectiveness, ntu. The order is fixed at
// construction and is the only order in which the state fields are
// defined.
type Pipeline struct {
	conv   thermo.Convention
	stages []Stage
	ntu    *NTUStage
}

// New builds a pipeline for the given convention, solving NTU with the
// given method and options.
func New(conv thermo.Convention, method solver.Method, opts solver.Options) *Pipeline {
	ntu := &NTUStage{Conv: conv, Method: method, Opts: opts}
	return &Pipeline{
		conv: conv,
		ntu:  ntu,
		stages: []Stage{
			FlowStage{},
			EnergyStage{},
			CapacityStage{},
			EffectivenessStage{Conv: conv},
			ntu,
		},
	}
}

// NewDefault builds a pipeline with the min/max convention and the
// hybrid solver at default options.
func NewDefault() *Pipeline {
	return New(thermo.ConvMinMax, solver.NewHybrid(), solver.DefaultOptions())
}

// Convention returns the active capacity-ratio convention.
func (p *Pipeline) Convention() thermo.Convention { return p.conv }

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.Name()
	}
	return names
}

// Result is one completed solve: the fully populated state plus the NTU
// solver diagnostics.
type Result struct {
	State      thermo.State
	Convention thermo.Convention
	Method     string
	Iterations int
	Residual   float64
	Bracketed  bool
	Duration   time.Duration
}

// Run derives and validates the operating point, then threads it through
// the stages. Validation failures return unwrapped; a stage failure is
// wrapped in a [thermo.StageError] naming the stage.
func (p *Pipeline) Run(s thermo.State) (*Result, error) {
	start := time.Now()

	s = s.Derive()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	for _, st := range p.stages {
		next, err := st.Apply(s)
		if err != nil {
			return nil, &thermo.StageError{Stage: st.Name(), Wrapped: err}
		}
		s = next
	}

	return &Result{
		State:      s,
		Convention: p.conv,
		Method:     p.ntu.Method.Name(),
		Iterations: p.ntu.Last.Iterations,
		Residual:   p.ntu.Last.Residual,
		Bracketed:  p.ntu.Last.Bracketed,
		Duration:   time.Since(start),
	}, nil
}
