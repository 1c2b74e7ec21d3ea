package bnb

import (
	"math"
	"sync"
)

// SolutionPool tracks the feasible integral solutions found during one
// search and keeps the best one (the incumbent). It is safe for concurrent
// use so the parallel driver's workers can share it; incumbent updates
// happen under the pool's lock and BestValue always reads the current value.
type SolutionPool struct {
	mu    sync.Mutex
	best  *RelaxedSolution
	count int
}

// NewSolutionPool returns an empty pool: no feasible solution found,
// BestValue is -Inf.
func NewSolutionPool() *SolutionPool {
	return &SolutionPool{}
}

// Add records a feasible integral solution. Solutions that are infeasible,
// non-integral, or over capacity are rejected: heuristics and drivers must
// only submit genuinely feasible candidates and the pool enforces that.
// Returns true when the solution strictly improved the incumbent.
func (p *SolutionPool) Add(sol *RelaxedSolution) bool {
	if sol == nil || !sol.IsIntegral() || !sol.ObeysCapacity() {
		return false
	}
	value := sol.Value()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	if p.best == nil || value > p.best.Value() {
		p.best = sol
		return true
	}
	return false
}

// BestValue returns the incumbent's value, or -Inf when no feasible
// solution has been found. The incumbent only ever grows.
func (p *SolutionPool) BestValue() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.best == nil {
		return math.Inf(-1)
	}
	return p.best.Value()
}

// Best returns the incumbent, or nil when the pool is empty.
func (p *SolutionPool) Best() *RelaxedSolution {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.best
}

// NumAdded returns how many feasible solutions were submitted and accepted
// as valid (not necessarily improving).
func (p *SolutionPool) NumAdded() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}
