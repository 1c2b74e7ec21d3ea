package bnb

import (
	"errors"
	"fmt"
)

// ErrMalformedInstance marks instance validation failures (negative values,
// negative weights, negative capacity). Detected before a search starts.
var ErrMalformedInstance = errors.New("malformed instance")

// Item is a single knapsack item. Immutable once loaded.
type Item struct {
	Value  float64 // non-negative
	Weight float64 // non-negative
}

// Instance is a 0/1 knapsack problem: an ordered list of items and a
// capacity. It is immutable for the lifetime of a solve; item order defines
// the canonical index space used by Decisions and RelaxedSolution.
type Instance struct {
	Items    []Item
	Capacity float64
}

// NumItems returns the number of items, i.e. the length of every decision
// and selection vector over this instance.
func (inst *Instance) NumItems() int {
	return len(inst.Items)
}

// Validate checks the instance for malformed data. All errors wrap
// ErrMalformedInstance so callers can classify them.
func (inst *Instance) Validate() error {
	if inst.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative, got %g", ErrMalformedInstance, inst.Capacity)
	}
	for i, item := range inst.Items {
		if item.Value < 0 {
			return fmt.Errorf("%w: item %d value must be non-negative, got %g", ErrMalformedInstance, i, item.Value)
		}
		if item.Weight < 0 {
			return fmt.Errorf("%w: item %d weight must be non-negative, got %g", ErrMalformedInstance, i, item.Weight)
		}
	}
	return nil
}
