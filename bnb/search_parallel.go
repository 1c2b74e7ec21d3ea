package bnb

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnbkit/bnbkit/bnb/trace"
)

// SolveParallel runs the search with cfg.Workers goroutines popping nodes
// from a shared frontier and pushing children back. Incumbent updates go
// through the pool's lock, and every prune check re-reads the pool's
// current best, so a worker can at worst keep a node the final incumbent
// would have pruned — inefficient, never incorrect: bounds only shrink as
// decisions accumulate and the incumbent only grows.
//
// Node order under contention is nondeterministic, so per-run node counts
// vary; the reported BestValue under StatusOptimal does not.
func SolveParallel(ctx context.Context, inst *Instance, cfg SearchConfig) (*SolveResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewSolutionPool()
	factory := NewNodeFactory(inst, cfg.Relaxation, nil)
	root, err := factory.Root()
	if err != nil {
		return nil, err
	}
	sf := newSharedFrontier(cfg.Frontier)
	sf.PushChild(root)

	// Wake blocked workers when the context is cancelled.
	go func() {
		<-ctx.Done()
		sf.Close()
	}()

	var explored, pruned atomic.Int64
	var budgetHit atomic.Bool

	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				node, ok := sf.Acquire()
				if !ok {
					return nil
				}
				if cfg.MaxNodes > 0 && explored.Load() >= cfg.MaxNodes {
					budgetHit.Store(true)
					sf.Close()
					sf.Release()
					return nil
				}
				explored.Add(1)
				status, children, err := expandNode(node, inst, pool, factory, cfg.Branching, cfg.Heuristic, nil)
				if err != nil {
					sf.Close()
					sf.Release()
					return err
				}
				if status == NodePruned || status == NodeInfeasible {
					pruned.Add(1)
				}
				for _, child := range children {
					sf.PushChild(child)
				}
				if cfg.Trace != nil {
					cfg.Trace.Record(trace.NodeRecord{
						ID: node.ID, ParentID: node.ParentID, Depth: node.Depth,
						Status: string(status), Bound: node.Bound.Objective,
					})
				}
				sf.Release()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil && !sf.Drained() {
		budgetHit.Store(true)
	}

	result := &SolveResult{
		Stats: SearchStats{
			NodesCreated:  factory.NumCreated(),
			NodesExplored: explored.Load(),
			NodesPruned:   pruned.Load(),
			Duration:      time.Since(start),
		},
	}
	result.BestValue = pool.BestValue()
	best := pool.Best()
	if best != nil {
		result.BestSelection = make([]float64, len(best.Selection))
		copy(result.BestSelection, best.Selection)
	}
	switch {
	case budgetHit.Load():
		result.Status = StatusFeasibleTimeout
	case best == nil:
		result.Status = StatusInfeasible
	default:
		result.Status = StatusOptimal
	}
	return result, nil
}

// sharedFrontier wraps a Frontier with the exclusive-access discipline the
// concurrency model requires: workers block in Acquire until a node is
// available, and the search is over only when the frontier is empty with no
// node still being expanded.
type sharedFrontier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	f        Frontier
	inflight int
	closed   bool
}

func newSharedFrontier(f Frontier) *sharedFrontier {
	sf := &sharedFrontier{f: f}
	sf.cond = sync.NewCond(&sf.mu)
	return sf
}

// PushChild adds a node and wakes one waiting worker.
func (sf *sharedFrontier) PushChild(n *Node) {
	sf.mu.Lock()
	sf.f.Push(n)
	sf.mu.Unlock()
	sf.cond.Signal()
}

// Acquire blocks until a node is available, returning ok=false when the
// search is done: frontier closed, or empty with no in-flight expansion.
func (sf *sharedFrontier) Acquire() (*Node, bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	for !sf.closed && sf.f.Len() == 0 && sf.inflight > 0 {
		sf.cond.Wait()
	}
	if sf.closed || sf.f.Len() == 0 {
		return nil, false
	}
	sf.inflight++
	return sf.f.Pop(), true
}

// Release marks one acquired node fully expanded (its children pushed).
func (sf *sharedFrontier) Release() {
	sf.mu.Lock()
	sf.inflight--
	done := sf.inflight == 0 && sf.f.Len() == 0
	sf.mu.Unlock()
	if done {
		sf.cond.Broadcast()
	}
}

// Close aborts the search: all blocked workers return.
func (sf *sharedFrontier) Close() {
	sf.mu.Lock()
	sf.closed = true
	sf.mu.Unlock()
	sf.cond.Broadcast()
}

// Drained reports whether every node was expanded: the frontier is empty
// and nothing is in flight.
func (sf *sharedFrontier) Drained() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.f.Len() == 0 && sf.inflight == 0
}
