package bnb

import "fmt"

// Heuristic derives feasible integral solutions from a node's relaxation,
// without waiting for the search to reach an integral node. Better
// incumbents found early tighten pruning for the whole run. Search must
// return only genuinely feasible solutions; the SolutionPool rejects
// anything else.
type Heuristic interface {
	Search(inst *Instance, relaxed *RelaxedSolution) []*RelaxedSolution
}

// NoHeuristic generates nothing. The driver still accepts integral feasible
// bounds directly, so the search stays correct, just with weaker pruning.
type NoHeuristic struct{}

func (NoHeuristic) Search(*Instance, *RelaxedSolution) []*RelaxedSolution {
	return nil
}

// GreedyFillHeuristic rounds a relaxation into a feasible solution: keep the
// entries the relaxation set to 1, then greedily add still-unselected items
// in density order while they fit. Produces nothing when the kept entries
// already exceed capacity.
type GreedyFillHeuristic struct{}

func (GreedyFillHeuristic) Search(inst *Instance, relaxed *RelaxedSolution) []*RelaxedSolution {
	if !relaxed.Feasible {
		return nil
	}
	selection := make([]float64, inst.NumItems())
	var weight, value float64
	for i, frac := range relaxed.Selection {
		if frac >= 1 {
			selection[i] = 1
			weight += inst.Items[i].Weight
			value += inst.Items[i].Value
		}
	}
	if weight > inst.Capacity {
		return nil
	}
	for _, i := range densityOrder(inst, func(i int) bool { return selection[i] == 0 }) {
		item := inst.Items[i]
		if item.Weight <= inst.Capacity-weight {
			selection[i] = 1
			weight += item.Weight
			value += item.Value
		}
	}
	sol := &RelaxedSolution{Instance: inst, Selection: selection, Objective: value, Feasible: true}
	return []*RelaxedSolution{sol}
}

// ValidHeuristics is the set of recognized heuristic names.
var ValidHeuristics = map[string]bool{"": true, "none": true, "greedy-fill": true}

// NewHeuristic creates a Heuristic by name. Empty string defaults to none.
// Panics on unrecognized names.
func NewHeuristic(name string) Heuristic {
	switch name {
	case "", "none":
		return NoHeuristic{}
	case "greedy-fill":
		return GreedyFillHeuristic{}
	default:
		panic(fmt.Sprintf("unknown heuristic %q", name))
	}
}
