package exchanger

import (
	"context"
	"errors"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func TestBatchPreservesOrder(t *testing.T) {
	states := make([]thermo.State, 12)
	for i := range states {
		s := thermo.Defaults()
		s.FlowLPM = 0.5 + 0.2*float64(i)
		states[i] = s
	}

	items := NewBatch(4, nil).Run(context.Background(), states)
	if len(items) != len(states) {
		t.Fatalf("got %d items, want %d", len(items), len(states))
	}

	prev := 0.0
	for i, it := range items {
		if it.Err != nil {
			t.Fatalf("item %d failed: %v", i, it.Err)
		}
		if it.State.FlowLPM != states[i].FlowLPM {
			t.Fatalf("item %d out of order: flow %g, want %g", i, it.State.FlowLPM, states[i].FlowLPM)
		}
		if it.Result.State.Duty <= prev {
			t.Errorf("duty not increasing with flow at item %d", i)
		}
		prev = it.Result.State.Duty
	}
}

func TestBatchKeepsFailures(t *testing.T) {
	states := make([]thermo.State, 5)
	for i := range states {
		states[i] = thermo.Defaults()
	}
	states[2].THotOut = states[2].THotIn

	items := NewBatch(2, nil).Run(context.Background(), states)
	for i, it := range items {
		if i == 2 {
			if !errors.Is(it.Err, thermo.ErrDegenerate) {
				t.Errorf("item 2 error = %v, want ErrDegenerate", it.Err)
			}
			if it.Result != nil {
				t.Error("failed item should carry no result")
			}
			continue
		}
		if it.Err != nil {
			t.Errorf("item %d failed: %v", i, it.Err)
		}
	}
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	states := []thermo.State{thermo.Defaults(), thermo.Defaults()}
	for i, it := range NewBatch(1, nil).Run(ctx, states) {
		if !errors.Is(it.Err, context.Canceled) {
			t.Errorf("item %d error = %v, want context.Canceled", i, it.Err)
		}
	}
}

func TestBatchDefaultWorkers(t *testing.T) {
	items := NewBatch(0, nil).Run(context.Background(), []thermo.State{thermo.Defaults()})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Err != nil {
		t.Fatalf("item failed: %v", items[0].Err)
	}
}

func TestBatchEmpty(t *testing.T) {
	if items := NewBatch(4, nil).Run(context.Background(), nil); len(items) != 0 {
		t.Fatalf("got %d items for empty input", len(items))
	}
}
