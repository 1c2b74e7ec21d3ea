package bnb

import (
	"container/heap"
	"fmt"
	"math"
)

// Frontier holds the not-yet-expanded nodes of a search. The driver only
// requires that some total order over pending nodes is used consistently
// per run; optimality does not depend on the order, only performance does.
type Frontier interface {
	Push(*Node)
	// Pop removes and returns the next node, or nil when empty.
	Pop() *Node
	Len() int
	// BestBound returns the highest bound objective among pending nodes,
	// or -Inf when empty.
	BestBound() float64
}

// BestBoundFrontier pops the pending node with the highest bound objective,
// minimizing the number of nodes explored at a higher cost per pop. Ties
// break by insertion order.
type BestBoundFrontier struct {
	h   boundHeap
	seq int64
}

// NewBestBoundFrontier returns an empty best-bound-first frontier.
func NewBestBoundFrontier() *BestBoundFrontier {
	return &BestBoundFrontier{h: make(boundHeap, 0)}
}

func (f *BestBoundFrontier) Push(n *Node) {
	heap.Push(&f.h, boundEntry{node: n, seq: f.seq})
	f.seq++
}

func (f *BestBoundFrontier) Pop() *Node {
	if len(f.h) == 0 {
		return nil
	}
	return heap.Pop(&f.h).(boundEntry).node
}

func (f *BestBoundFrontier) Len() int {
	return len(f.h)
}

func (f *BestBoundFrontier) BestBound() float64 {
	if len(f.h) == 0 {
		return math.Inf(-1)
	}
	return f.h[0].node.Bound.Objective
}

type boundEntry struct {
	node *Node
	seq  int64
}

// boundHeap implements heap.Interface, ordered by descending bound objective
// with insertion-order tie-break.
type boundHeap []boundEntry

func (h boundHeap) Len() int { return len(h) }
func (h boundHeap) Less(i, j int) bool {
	if h[i].node.Bound.Objective != h[j].node.Bound.Objective {
		return h[i].node.Bound.Objective > h[j].node.Bound.Objective
	}
	return h[i].seq < h[j].seq
}
func (h boundHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *boundHeap) Push(x any) {
	*h = append(*h, x.(boundEntry))
}

func (h *boundHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// DepthFirstFrontier pops the most recently pushed node, minimizing memory:
// the frontier never holds more than depth*branching nodes.
type DepthFirstFrontier struct {
	stack []*Node
}

// NewDepthFirstFrontier returns an empty LIFO frontier.
func NewDepthFirstFrontier() *DepthFirstFrontier {
	return &DepthFirstFrontier{}
}

func (f *DepthFirstFrontier) Push(n *Node) {
	f.stack = append(f.stack, n)
}

func (f *DepthFirstFrontier) Pop() *Node {
	if len(f.stack) == 0 {
		return nil
	}
	n := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return n
}

func (f *DepthFirstFrontier) Len() int {
	return len(f.stack)
}

func (f *DepthFirstFrontier) BestBound() float64 {
	best := math.Inf(-1)
	for _, n := range f.stack {
		if n.Bound.Objective > best {
			best = n.Bound.Objective
		}
	}
	return best
}

// ValidFrontiers is the set of recognized frontier names.
var ValidFrontiers = map[string]bool{"": true, "best-bound": true, "depth-first": true}

// NewFrontier creates a Frontier by name. Empty string defaults to
// best-bound. Panics on unrecognized names.
func NewFrontier(name string) Frontier {
	switch name {
	case "", "best-bound":
		return NewBestBoundFrontier()
	case "depth-first":
		return NewDepthFirstFrontier()
	default:
		panic(fmt.Sprintf("unknown frontier %q", name))
	}
}
