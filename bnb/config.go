package bnb

import (
	"time"

	"github.com/bnbkit/bnbkit/bnb/trace"
)

// SearchConfig groups the knobs for one solve. Nil strategy fields take the
// defaults noted per field; zero budget fields mean unlimited, i.e. run to
// proven optimum.
type SearchConfig struct {
	Relaxation RelaxationSolver   // bounding policy (default capacity-checked)
	Branching  BranchingStrategy  // partitioning policy (default first-unfixed)
	Frontier   Frontier           // node ordering (default best-bound)
	Heuristic  Heuristic          // incumbent generation (default none)
	MaxNodes   int64              // max nodes to explore (0 = unlimited)
	TimeLimit  time.Duration      // wall-clock budget (0 = unlimited)
	Workers    int                // worker count for SolveParallel (0 = GOMAXPROCS)
	Trace      *trace.SearchTrace // optional node-decision trace (nil = disabled)
}

// withDefaults fills nil strategy fields. The frontier is per-run mutable
// state, so the default is constructed fresh here rather than shared.
func (cfg SearchConfig) withDefaults() SearchConfig {
	if cfg.Relaxation == nil {
		cfg.Relaxation = CapacityCheckedRelaxation{}
	}
	if cfg.Branching == nil {
		cfg.Branching = FirstUnfixedBranching{}
	}
	if cfg.Frontier == nil {
		cfg.Frontier = NewBestBoundFrontier()
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = NoHeuristic{}
	}
	return cfg
}
