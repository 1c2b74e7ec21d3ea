package bnb

import (
	"errors"
	"fmt"
	"strings"
)

// Decision is the state of one item in a node's partial assignment.
// The explicit Unset tag avoids any ambiguity between "excluded" and
// "not yet decided".
type Decision uint8

const (
	// Unset means the item has not been decided yet.
	Unset Decision = iota
	// Exclude fixes the item out of the knapsack.
	Exclude
	// Include fixes the item into the knapsack.
	Include
)

// String returns "_", "0" or "1".
func (d Decision) String() string {
	switch d {
	case Exclude:
		return "0"
	case Include:
		return "1"
	default:
		return "_"
	}
}

// ErrInvalidBranchIndex reports a SplitOn call on an index that is already
// fixed. This is a contract violation by a branching strategy, not a
// recoverable condition: the solve aborts.
var ErrInvalidBranchIndex = errors.New("branch index already fixed")

// Decisions is a fixed-length ternary vector of branching decisions, one
// entry per item. Entries only ever narrow: once fixed to Exclude or
// Include, an entry never changes in any descendant vector.
type Decisions []Decision

// NewDecisions returns an all-Unset vector of the given length.
func NewDecisions(n int) Decisions {
	return make(Decisions, n)
}

// Clone returns an independent copy.
func (d Decisions) Clone() Decisions {
	out := make(Decisions, len(d))
	copy(out, d)
	return out
}

// IsFixed reports whether every entry is decided (a leaf in the search tree).
func (d Decisions) IsFixed() bool {
	for _, v := range d {
		if v == Unset {
			return false
		}
	}
	return true
}

// FirstUnset returns the lowest undecided index, or -1 if all are fixed.
func (d Decisions) FirstUnset() int {
	for i, v := range d {
		if v == Unset {
			return i
		}
	}
	return -1
}

// SplitOn partitions the remaining search space on item i: it returns two
// new vectors identical to d except entry i is Exclude in the first and
// Include in the second. Every 0/1 completion of d is reachable from exactly
// one of the two. Fails with ErrInvalidBranchIndex when entry i is already
// fixed.
func (d Decisions) SplitOn(i int) (exclude, include Decisions, err error) {
	if i < 0 || i >= len(d) {
		return nil, nil, fmt.Errorf("split on index %d: out of range [0,%d)", i, len(d))
	}
	if d[i] != Unset {
		return nil, nil, fmt.Errorf("split on index %d: %w", i, ErrInvalidBranchIndex)
	}
	exclude = d.Clone()
	include = d.Clone()
	exclude[i] = Exclude
	include[i] = Include
	return exclude, include, nil
}

// String renders the vector like "[1|_|0]".
func (d Decisions) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range d {
		sb.WriteString(v.String())
		if i < len(d)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
