package exchanger

import (
	"context"
	"runtime"
	"sync"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// BatchItem is one evaluated operating point. Result is nil when Err is
// set; a failed point never aborts the batch, sweeps are expected to
// cross degenerate regions.
type BatchItem struct {
	State  thermo.State
	Result *Result
	Err    error
}

// Batch evaluates many operating points with a bounded worker pool. Each
// worker builds its own pipeline from Factory, so no pipeline state is
// shared. Results keep input order.
type Batch struct {
	Workers int
	Factory func() *Pipeline
}

func NewBatch(workers int, factory func() *Pipeline) *Batch {
	if factory == nil {
		factory = NewDefault
	}
	return &Batch{Workers: workers, Factory: factory}
}

// Run evaluates every state. Points not yet submitted when ctx is
// canceled carry ctx.Err in their slot; points already submitted finish.
func (b *Batch) Run(ctx context.Context, states []thermo.State) []BatchItem {
	items := make([]BatchItem, len(states))

	workers := b.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(states) {
		workers = len(states)
	}
	if workers < 1 {
		return items
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := b.Factory()
			for i := range jobs {
				res, err := p.Run(states[i])
				items[i] = BatchItem{State: states[i], Result: res, Err: err}
			}
		}()
	}

	submitted := len(states)
submit:
	for i := range states {
		if ctx.Err() != nil {
			submitted = i
			break submit
		}
		select {
		case <-ctx.Done():
			submitted = i
			break submit
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for j := submitted; j < len(states); j++ {
			items[j] = BatchItem{State: states[j], Err: err}
		}
	}

	return items
}
