package bnb

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bnbkit/bnbkit/bnb/trace"
)

// Status is the terminal state of a solve.
type Status string

const (
	// StatusOptimal means the frontier emptied (or was bounded out): the
	// incumbent, if any, is provably optimal.
	StatusOptimal Status = "optimal"
	// StatusFeasibleTimeout means a node or time budget ran out first: the
	// incumbent is best-known but optimality is not certified.
	StatusFeasibleTimeout Status = "feasible-timeout"
	// StatusInfeasible means the search completed without ever finding a
	// feasible integer solution. Unreachable for plain knapsack (the empty
	// selection is always feasible); part of the generic engine contract.
	StatusInfeasible Status = "infeasible"
)

// SearchStats counts the work done by one solve.
type SearchStats struct {
	NodesCreated  int64
	NodesExplored int64
	NodesPruned   int64 // includes infeasible nodes discarded on pop
	Duration      time.Duration
}

// SolveResult is what the engine returns on completion.
type SolveResult struct {
	Status Status
	// BestValue is the incumbent's value; -Inf when BestSelection is nil.
	BestValue float64
	// BestSelection is the incumbent's 0/1 selection vector, or nil when no
	// feasible solution was found.
	BestSelection []float64
	Stats         SearchStats
}

// Search drives one branch-and-bound run over a single instance. It owns
// the frontier and the incumbent for the duration of the run; create a new
// Search per solve.
type Search struct {
	inst     *Instance
	cfg      SearchConfig
	pool     *SolutionPool
	factory  *NodeFactory
	progress progressTracker
	explored int64
	pruned   int64
}

// NewSearch validates the instance and prepares a driver with the given
// configuration. Strategy fields left nil take the documented defaults.
func NewSearch(inst *Instance, cfg SearchConfig) (*Search, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	s := &Search{inst: inst, cfg: cfg, pool: NewSolutionPool()}
	s.factory = NewNodeFactory(inst, cfg.Relaxation, nil)
	return s, nil
}

// Solve runs a search to completion with the given configuration. It is the
// package's convenience entry point; use NewSearch plus Run for cancellation.
func Solve(inst *Instance, cfg SearchConfig) (*SolveResult, error) {
	s, err := NewSearch(inst, cfg)
	if err != nil {
		return nil, err
	}
	return s.Run(context.Background())
}

// Run executes the search loop: seed the root, then repeatedly pop the next
// node, prune it, accept it, or branch it, until the frontier empties or a
// budget runs out. Budget and cancellation checks are cooperative, once per
// iteration; in-flight relaxation or branching calls are not interrupted.
func (s *Search) Run(ctx context.Context) (*SolveResult, error) {
	start := time.Now()
	s.progress.onStart(s.inst)

	root, err := s.factory.Root()
	if err != nil {
		return nil, err
	}
	s.cfg.Frontier.Push(root)

	budgetHit := false
	for s.cfg.Frontier.Len() > 0 {
		if ctx.Err() != nil {
			budgetHit = true
			break
		}
		if s.cfg.TimeLimit > 0 && time.Since(start) >= s.cfg.TimeLimit {
			budgetHit = true
			break
		}
		if s.cfg.MaxNodes > 0 && s.explored >= s.cfg.MaxNodes {
			budgetHit = true
			break
		}

		node := s.cfg.Frontier.Pop()
		s.explored++

		status, children, err := expandNode(node, s.inst, s.pool, s.factory, s.cfg.Branching, s.cfg.Heuristic, &s.progress)
		if err != nil {
			return nil, err
		}
		if status == NodePruned || status == NodeInfeasible {
			s.pruned++
		}
		for _, child := range children {
			s.cfg.Frontier.Push(child)
		}
		s.record(node, status)
		s.progress.onNodeProcessed(node, status, s.factory.NumCreated(), s.globalUpperBound(), s.pool.BestValue())

		// Global prune: nothing pending can beat the incumbent.
		if s.cfg.Frontier.BestBound() <= s.pool.BestValue() {
			logrus.Debugf("global prune after %d iterations", s.explored)
			break
		}
	}

	result := s.buildResult(budgetHit, time.Since(start))
	s.progress.onEnd(result)
	return result, nil
}

func (s *Search) record(node *Node, status NodeStatus) {
	if s.cfg.Trace == nil {
		return
	}
	s.cfg.Trace.Record(trace.NodeRecord{
		ID:       node.ID,
		ParentID: node.ParentID,
		Depth:    node.Depth,
		Status:   string(status),
		Bound:    node.Bound.Objective,
	})
}

// globalUpperBound is max(frontier best bound, incumbent value): the proven
// ceiling on the optimum at this point of the search.
func (s *Search) globalUpperBound() float64 {
	ub := s.cfg.Frontier.BestBound()
	if lb := s.pool.BestValue(); lb > ub {
		ub = lb
	}
	return ub
}

func (s *Search) buildResult(budgetHit bool, elapsed time.Duration) *SolveResult {
	result := &SolveResult{
		Stats: SearchStats{
			NodesCreated:  s.factory.NumCreated(),
			NodesExplored: s.explored,
			NodesPruned:   s.pruned,
			Duration:      elapsed,
		},
	}
	result.BestValue = s.pool.BestValue()
	best := s.pool.Best()
	if best != nil {
		result.BestSelection = make([]float64, len(best.Selection))
		copy(result.BestSelection, best.Selection)
	}
	switch {
	case budgetHit:
		result.Status = StatusFeasibleTimeout
	case best == nil:
		result.Status = StatusInfeasible
	default:
		result.Status = StatusOptimal
	}
	return result
}

// expandNode applies the per-node rules, in order:
//  1. discard an infeasible bound;
//  2. prune when the bound cannot strictly beat the incumbent;
//  3. accept an integral, capacity-obeying bound as a new incumbent and stop
//     expanding (branching cannot improve an integral relaxation);
//  4. run the heuristic to inject extra feasible solutions;
//  5. branch, bounding each child.
//
// Shared by the sequential and parallel drivers. The prune check re-reads
// the pool's current best at prune time, never a stale snapshot.
func expandNode(node *Node, inst *Instance, pool *SolutionPool, factory *NodeFactory,
	branching BranchingStrategy, heuristic Heuristic, progress *progressTracker) (NodeStatus, []*Node, error) {

	bound := node.Bound
	if !bound.Feasible {
		return NodeInfeasible, nil, nil
	}
	if bound.Objective <= pool.BestValue() {
		return NodePruned, nil, nil
	}
	if bound.IsIntegral() && bound.ObeysCapacity() {
		if pool.Add(bound) && progress != nil {
			progress.onIncumbent(node, bound.Value())
		}
		return NodeFeasible, nil, nil
	}

	for _, sol := range heuristic.Search(inst, bound) {
		if pool.Add(sol) && progress != nil {
			progress.onIncumbent(node, sol.Value())
		}
	}

	decisions, err := branching.Branch(node)
	if err != nil {
		return NodeUnknown, nil, err
	}
	if len(decisions) == 0 && !node.Leaf() {
		logrus.Warnf("branching produced no children for non-leaf node %d %s", node.ID, node.Decisions)
	}
	children := make([]*Node, 0, len(decisions))
	for _, dec := range decisions {
		child, err := factory.Child(node, dec)
		if err != nil {
			return NodeUnknown, nil, err
		}
		children = append(children, child)
	}
	return NodeBranched, children, nil
}
