package bnb

import (
	"math"
	"strconv"
	"strings"
)

// RelaxedSolution is the result of relaxing a subproblem: a possibly
// fractional selection vector plus an upper-bound objective and a
// feasibility flag.
//
// Invariants a conforming RelaxationSolver must uphold:
//   - entries fixed by the generating decisions are preserved (Exclude -> 0,
//     Include -> 1);
//   - Objective is an upper bound on the value of any 0/1 completion of the
//     generating decisions that respects capacity;
//   - an infeasible relaxation carries Objective = -Inf so it is never
//     preferred and is always pruned.
type RelaxedSolution struct {
	Instance  *Instance
	Selection []float64 // one entry per item, each in [0,1]
	Objective float64
	Feasible  bool
}

// NewInfeasibleRelaxation returns the infeasible marker: all-zero selection
// and an Objective of -Inf.
func NewInfeasibleRelaxation(inst *Instance) *RelaxedSolution {
	return &RelaxedSolution{
		Instance:  inst,
		Selection: make([]float64, inst.NumItems()),
		Objective: math.Inf(-1),
		Feasible:  false,
	}
}

// Value computes the total selected value, sum(item.Value * fraction).
func (rs *RelaxedSolution) Value() float64 {
	var total float64
	for i, frac := range rs.Selection {
		total += rs.Instance.Items[i].Value * frac
	}
	return total
}

// Weight computes the total selected weight, sum(item.Weight * fraction).
func (rs *RelaxedSolution) Weight() float64 {
	var total float64
	for i, frac := range rs.Selection {
		total += rs.Instance.Items[i].Weight * frac
	}
	return total
}

// IsIntegral reports whether every selection entry is exactly 0 or 1.
// False for the infeasible marker.
func (rs *RelaxedSolution) IsIntegral() bool {
	if !rs.Feasible {
		return false
	}
	for _, frac := range rs.Selection {
		if frac != 0 && frac != 1 {
			return false
		}
	}
	return true
}

// ObeysCapacity reports whether the selection is within [0,1] per entry and
// its total weight fits the capacity. False for the infeasible marker.
func (rs *RelaxedSolution) ObeysCapacity() bool {
	if !rs.Feasible {
		return false
	}
	for _, frac := range rs.Selection {
		if frac < 0 || frac > 1 {
			return false
		}
	}
	return rs.Weight() <= rs.Instance.Capacity
}

// String renders the selection like "[1|0.5|0]".
func (rs *RelaxedSolution) String() string {
	parts := make([]string, len(rs.Selection))
	for i, frac := range rs.Selection {
		if frac == math.Trunc(frac) {
			parts[i] = strconv.Itoa(int(frac))
		} else {
			parts[i] = strconv.FormatFloat(frac, 'f', 1, 64)
		}
	}
	return "[" + strings.Join(parts, "|") + "]"
}
