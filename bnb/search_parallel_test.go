package bnb

import (
	"context"
	"testing"
)

func TestSolveParallel_FindsOptima(t *testing.T) {
	cases := []struct {
		name    string
		inst    *Instance
		cfg     SearchConfig
		optimum float64
	}{
		{"worked3", workedInstance(), SearchConfig{Workers: 4}, 16},
		{"uniform10", uniformInstance10(), SearchConfig{Workers: 4}, 5},
		{"mixed12", mixedInstance12(), SearchConfig{Workers: 4, Relaxation: FractionalRelaxation{}}, 60},
		{"large20", largeInstance20(), SearchConfig{
			Workers:    4,
			Relaxation: FractionalRelaxation{},
			Branching:  BestDensityBranching{},
			Heuristic:  GreedyFillHeuristic{},
		}, 171},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SolveParallel(context.Background(), tc.inst, tc.cfg)
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}
			checkOptimal(t, result, tc.inst, tc.optimum)
		})
	}
}

// Node order under contention varies run to run, but the certified optimum
// must not.
func TestSolveParallel_AgreesWithSequential(t *testing.T) {
	inst := mixedInstance12()
	cfg := SearchConfig{Relaxation: FractionalRelaxation{}}
	sequential, err := Solve(inst, cfg)
	if err != nil {
		t.Fatalf("sequential solve failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		cfg := cfg
		cfg.Workers = 4
		parallel, err := SolveParallel(context.Background(), inst, cfg)
		if err != nil {
			t.Fatalf("run %d failed: %v", run, err)
		}
		if parallel.Status != sequential.Status || parallel.BestValue != sequential.BestValue {
			t.Fatalf("run %d: got (%s, %g), sequential found (%s, %g)",
				run, parallel.Status, parallel.BestValue, sequential.Status, sequential.BestValue)
		}
	}
}

func TestSolveParallel_SingleWorker(t *testing.T) {
	result, err := SolveParallel(context.Background(), workedInstance(), SearchConfig{Workers: 1})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	checkOptimal(t, result, workedInstance(), 16)
}

func TestSolveParallel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := SolveParallel(ctx, mixedInstance12(), SearchConfig{Workers: 4})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if result.Status == StatusOptimal {
		t.Errorf("cancelled solve must not certify optimality, got %s", result.Status)
	}
}

func TestSolveParallel_NodeBudget(t *testing.T) {
	result, err := SolveParallel(context.Background(), mixedInstance12(), SearchConfig{Workers: 4, MaxNodes: 1})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if result.Status != StatusFeasibleTimeout {
		t.Errorf("status: got %s, want %s", result.Status, StatusFeasibleTimeout)
	}
	if result.Stats.NodesExplored > 2 {
		t.Errorf("explored %d nodes under a budget of 1", result.Stats.NodesExplored)
	}
}

func TestSolveParallel_StrategyErrorPropagates(t *testing.T) {
	_, err := SolveParallel(context.Background(), workedInstance(), SearchConfig{Workers: 4, Branching: failingBranching{}})
	if err == nil {
		t.Error("strategy failure did not abort the solve")
	}
}

func TestSolveParallel_RejectsMalformedInstance(t *testing.T) {
	inst := &Instance{Items: []Item{{Value: 1, Weight: -2}}, Capacity: 5}
	if _, err := SolveParallel(context.Background(), inst, SearchConfig{}); err == nil {
		t.Error("malformed instance accepted")
	}
}
