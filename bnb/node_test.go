package bnb

import (
	"errors"
	"testing"
)

func TestNodeFactoryRoot(t *testing.T) {
	factory := NewNodeFactory(workedInstance(), WeightBlindRelaxation{}, nil)
	root, err := factory.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	if root.ID != 0 || root.ParentID != -1 || root.Depth != 0 {
		t.Errorf("root identity: got id=%d parent=%d depth=%d", root.ID, root.ParentID, root.Depth)
	}
	if root.Decisions.IsFixed() {
		t.Error("root decisions should be all-unset")
	}
	if root.Bound == nil || root.Bound.Objective != 24 {
		t.Errorf("root bound: got %+v, want objective 24", root.Bound)
	}
}

func TestNodeFactoryChildIDsAndDepth(t *testing.T) {
	factory := NewNodeFactory(workedInstance(), WeightBlindRelaxation{}, nil)
	root, err := factory.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	exclude, include, err := root.Decisions.SplitOn(0)
	if err != nil {
		t.Fatalf("SplitOn failed: %v", err)
	}
	left, err := factory.Child(root, exclude)
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}
	right, err := factory.Child(root, include)
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}
	if left.ID != 1 || right.ID != 2 {
		t.Errorf("child ids: got %d and %d, want 1 and 2", left.ID, right.ID)
	}
	if left.ParentID != root.ID || right.ParentID != root.ID {
		t.Error("children do not point at their parent")
	}
	if left.Depth != 1 || right.Depth != 1 {
		t.Errorf("child depth: got %d and %d, want 1", left.Depth, right.Depth)
	}
	if factory.NumCreated() != 3 {
		t.Errorf("NumCreated: got %d, want 3", factory.NumCreated())
	}
}

func TestNodeFactoryCallback(t *testing.T) {
	var seen []int64
	factory := NewNodeFactory(workedInstance(), CapacityCheckedRelaxation{}, func(n *Node) {
		seen = append(seen, n.ID)
	})
	root, err := factory.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	exclude, _, err := root.Decisions.SplitOn(1)
	if err != nil {
		t.Fatalf("SplitOn failed: %v", err)
	}
	if _, err := factory.Child(root, exclude); err != nil {
		t.Fatalf("Child failed: %v", err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("callback saw %v, want [0 1]", seen)
	}
}

type errRelaxation struct{}

func (errRelaxation) Solve(*Instance, Decisions) (*RelaxedSolution, error) {
	return nil, errors.New("bound computation failed")
}

func TestNodeFactoryPropagatesRelaxationError(t *testing.T) {
	factory := NewNodeFactory(workedInstance(), errRelaxation{}, nil)
	if _, err := factory.Root(); err == nil {
		t.Error("relaxation error not propagated")
	}
}

func TestNodeLeaf(t *testing.T) {
	partial := &Node{Decisions: Decisions{Include, Unset, Exclude}}
	if partial.Leaf() {
		t.Error("node with an unset entry reported as leaf")
	}
	full := &Node{Decisions: Decisions{Include, Include, Exclude}}
	if !full.Leaf() {
		t.Error("fully fixed node not reported as leaf")
	}
}
