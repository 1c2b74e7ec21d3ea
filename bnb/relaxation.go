package bnb

import (
	"fmt"
	"sort"
)

// RelaxationSolver computes an optimistic bound for the subproblem defined
// by a decision vector. Solve must be pure: it reads inst and dec and
// returns a fresh RelaxedSolution satisfying the invariants documented on
// that type. Violating the upper-bound guarantee silently corrupts
// optimality — the engine has no way to detect it.
type RelaxationSolver interface {
	Solve(inst *Instance, dec Decisions) (*RelaxedSolution, error)
}

// WeightBlindRelaxation ignores capacity entirely: every entry not fixed to
// Exclude is set to 1. The loosest, cheapest bound, O(number of items).
type WeightBlindRelaxation struct{}

func (WeightBlindRelaxation) Solve(inst *Instance, dec Decisions) (*RelaxedSolution, error) {
	selection := make([]float64, inst.NumItems())
	var objective float64
	for i, d := range dec {
		if d != Exclude {
			selection[i] = 1
			objective += inst.Items[i].Value
		}
	}
	return &RelaxedSolution{Instance: inst, Selection: selection, Objective: objective, Feasible: true}, nil
}

// CapacityCheckedRelaxation first sums the weight of entries fixed to
// Include; if that alone exceeds capacity the whole subtree is infeasible
// and gets the -Inf sentinel. Otherwise it behaves like WeightBlindRelaxation.
// Strictly tighter than weight-blind: it short-circuits infeasible branches
// as soon as the fixed part no longer fits.
type CapacityCheckedRelaxation struct{}

func (CapacityCheckedRelaxation) Solve(inst *Instance, dec Decisions) (*RelaxedSolution, error) {
	var fixedWeight float64
	for i, d := range dec {
		if d == Include {
			fixedWeight += inst.Items[i].Weight
		}
	}
	if fixedWeight > inst.Capacity {
		return NewInfeasibleRelaxation(inst), nil
	}
	return WeightBlindRelaxation{}.Solve(inst, dec)
}

// FractionalRelaxation computes the continuous fractional-knapsack
// relaxation: fixed entries are kept, then unfixed items fill the remaining
// capacity greedily in value/weight density order, with the last item
// allowed to be fractional. The tightest linear relaxation for knapsack.
type FractionalRelaxation struct{}

func (FractionalRelaxation) Solve(inst *Instance, dec Decisions) (*RelaxedSolution, error) {
	selection := make([]float64, inst.NumItems())
	var fixedWeight, objective float64
	for i, d := range dec {
		if d == Include {
			selection[i] = 1
			fixedWeight += inst.Items[i].Weight
			objective += inst.Items[i].Value
		}
	}
	if fixedWeight > inst.Capacity {
		return NewInfeasibleRelaxation(inst), nil
	}

	remaining := inst.Capacity - fixedWeight
	for _, i := range densityOrder(inst, func(i int) bool { return dec[i] == Unset }) {
		item := inst.Items[i]
		switch {
		case item.Weight <= remaining:
			selection[i] = 1
			objective += item.Value
			remaining -= item.Weight
		case remaining > 0 && item.Weight > 0:
			frac := remaining / item.Weight
			selection[i] = frac
			objective += item.Value * frac
			remaining = 0
		}
	}
	return &RelaxedSolution{Instance: inst, Selection: selection, Objective: objective, Feasible: true}, nil
}

// densityOrder returns the indices accepted by keep, sorted by descending
// value/weight density. Cross-multiplied comparison keeps zero-weight items
// (infinite density) first without dividing by zero; ties break by index for
// determinism.
func densityOrder(inst *Instance, keep func(int) bool) []int {
	order := make([]int, 0, inst.NumItems())
	for i := range inst.Items {
		if keep(i) {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := inst.Items[order[a]], inst.Items[order[b]]
		da := ia.Value * ib.Weight
		db := ib.Value * ia.Weight
		if da != db {
			return da > db
		}
		return order[a] < order[b]
	})
	return order
}

// ValidRelaxations is the set of recognized relaxation solver names.
// Shared by SolverBundle.Validate and NewRelaxationSolver.
var ValidRelaxations = map[string]bool{"": true, "weight-blind": true, "capacity-checked": true, "fractional": true}

// NewRelaxationSolver creates a RelaxationSolver by name. Empty string
// defaults to capacity-checked. Panics on unrecognized names; validate
// user-supplied names through SolverBundle first.
func NewRelaxationSolver(name string) RelaxationSolver {
	switch name {
	case "", "capacity-checked":
		return CapacityCheckedRelaxation{}
	case "weight-blind":
		return WeightBlindRelaxation{}
	case "fractional":
		return FractionalRelaxation{}
	default:
		panic(fmt.Sprintf("unknown relaxation solver %q", name))
	}
}
