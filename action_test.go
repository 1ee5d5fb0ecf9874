package vouch

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/pipz"
)

func TestActionFunc_Apply(t *testing.T) {
	ctx := context.Background()

	sum := ActionFunc[[]int, int](func(_ context.Context, ns []int) (int, error) {
		total := 0
		for _, n := range ns {
			total += n
		}
		return total, nil
	})

	got, err := sum.Apply(ctx, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestPipelineAction_ProcessesThroughPipz(t *testing.T) {
	ctx := context.Background()

	doubler := pipz.Transform(pipz.NewIdentity("double", ""), func(_ context.Context, n int) int {
		return n * 2
	})

	handle, err := TryNew(ctx, 5, NewChain(positive, odd))
	if err != nil {
		t.Fatalf("TryNew failed: %v", err)
	}

	got, err := Execute(ctx, handle, PipelineAction(doubler))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestPipelineAction_PropagatesPipzError(t *testing.T) {
	ctx := context.Background()

	failing := pipz.Apply(pipz.NewIdentity("persist", ""), func(_ context.Context, n int) (int, error) {
		return n, errors.New("store offline")
	})

	handle, err := TryNew(ctx, 5, NewChain(positive))
	if err != nil {
		t.Fatalf("TryNew failed: %v", err)
	}

	_, err = Execute(ctx, handle, PipelineAction(failing))
	if err == nil {
		t.Fatal("expected pipz error to propagate")
	}
	if handle.Phase() != PhaseConsumed {
		t.Errorf("expected consumed after failed pipeline, got %s", handle.Phase())
	}
}
