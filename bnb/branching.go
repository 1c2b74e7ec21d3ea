package bnb

import (
	"fmt"
	"math"
)

// BranchingStrategy decides how to partition a node's remaining search
// space. Branch returns zero or more child decision vectors; an empty result
// means the strategy considers the node exhausted. Every returned child must
// be one SplitOn application away from the node's decisions — strategies
// only ever narrow, never widen or skip.
type BranchingStrategy interface {
	Branch(node *Node) ([]Decisions, error)
}

// FirstUnfixedBranching deterministically splits on the lowest unset index.
// Simple, complete, and independent of the relaxation's values.
type FirstUnfixedBranching struct{}

func (FirstUnfixedBranching) Branch(node *Node) ([]Decisions, error) {
	i := node.Decisions.FirstUnset()
	if i < 0 {
		return nil, nil // leaf
	}
	exclude, include, err := node.Decisions.SplitOn(i)
	if err != nil {
		return nil, err
	}
	return []Decisions{exclude, include}, nil
}

// BestDensityBranching splits on the unfixed index with the highest
// value/weight ratio among those whose relaxed selection is strictly
// fractional. When no such candidate exists it falls back to
// FirstUnfixedBranching, which keeps the search complete: formally-unset
// entries still get decided even if the relaxation never made them
// fractional.
type BestDensityBranching struct {
	// DisableFallback reproduces the variant that treats a node with no
	// strictly fractional relaxed entry as exhausted. Without the fallback
	// the search is not complete: unset entries whose relaxed value is
	// integral are never decided. Kept for comparing branching behavior.
	DisableFallback bool
}

func (b BestDensityBranching) Branch(node *Node) ([]Decisions, error) {
	best := -1
	bestDensity := math.Inf(-1)
	for i, d := range node.Decisions {
		if d != Unset {
			continue
		}
		frac := node.Bound.Selection[i]
		if frac <= 0 || frac >= 1 {
			continue
		}
		item := node.Bound.Instance.Items[i]
		density := math.Inf(1)
		if item.Weight > 0 {
			density = item.Value / item.Weight
		}
		if density > bestDensity {
			best, bestDensity = i, density
		}
	}
	if best < 0 {
		if b.DisableFallback {
			return nil, nil
		}
		return FirstUnfixedBranching{}.Branch(node)
	}
	exclude, include, err := node.Decisions.SplitOn(best)
	if err != nil {
		return nil, err
	}
	return []Decisions{exclude, include}, nil
}

// ValidBranchings is the set of recognized branching strategy names.
var ValidBranchings = map[string]bool{"": true, "first-unfixed": true, "best-density": true, "best-density-nofallback": true}

// NewBranchingStrategy creates a BranchingStrategy by name. Empty string
// defaults to first-unfixed. Panics on unrecognized names.
func NewBranchingStrategy(name string) BranchingStrategy {
	switch name {
	case "", "first-unfixed":
		return FirstUnfixedBranching{}
	case "best-density":
		return BestDensityBranching{}
	case "best-density-nofallback":
		return BestDensityBranching{DisableFallback: true}
	default:
		panic(fmt.Sprintf("unknown branching strategy %q", name))
	}
}
