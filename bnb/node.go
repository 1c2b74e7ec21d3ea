package bnb

import "sync/atomic"

// NodeStatus is the lifecycle state of a search-tree node.
type NodeStatus string

const (
	// NodeUnknown is the initial status of a freshly created node.
	NodeUnknown NodeStatus = "unknown"
	// NodeEnqueued means the node is waiting in the frontier.
	NodeEnqueued NodeStatus = "enqueued"
	// NodePruned means the node's bound could not beat the incumbent.
	NodePruned NodeStatus = "pruned"
	// NodeInfeasible means the node's relaxation was infeasible.
	NodeInfeasible NodeStatus = "infeasible"
	// NodeFeasible means the node's bound was integral and within capacity.
	NodeFeasible NodeStatus = "feasible"
	// NodeBranched means the node was expanded into children.
	NodeBranched NodeStatus = "branched"
)

// Node is a search-tree node: a decision vector bundled with its computed
// bound. Nodes are point-in-time snapshots, never mutated after creation.
type Node struct {
	ID        int64
	ParentID  int64 // -1 for the root
	Depth     int   // root = 0
	Decisions Decisions
	Bound     *RelaxedSolution
}

// Leaf reports whether the node has no unfixed decision entries.
func (n *Node) Leaf() bool {
	return n.Decisions.IsFixed()
}

// NodeFactory creates root and child nodes, bounding each with the
// configured relaxation solver. The id counter is atomic so the factory can
// be shared by parallel workers.
type NodeFactory struct {
	inst       *Instance
	relaxation RelaxationSolver
	onNewNode  func(*Node) // invoked after each creation; may be nil
	counter    atomic.Int64
}

// NewNodeFactory returns a factory bound to one instance and relaxation.
func NewNodeFactory(inst *Instance, relaxation RelaxationSolver, onNewNode func(*Node)) *NodeFactory {
	return &NodeFactory{inst: inst, relaxation: relaxation, onNewNode: onNewNode}
}

// Root creates the root node: all decisions Unset, bounded by the relaxation.
func (f *NodeFactory) Root() (*Node, error) {
	return f.newNode(NewDecisions(f.inst.NumItems()), -1, 0)
}

// Child creates a child of parent with the given (already split) decisions.
func (f *NodeFactory) Child(parent *Node, dec Decisions) (*Node, error) {
	return f.newNode(dec, parent.ID, parent.Depth+1)
}

func (f *NodeFactory) newNode(dec Decisions, parentID int64, depth int) (*Node, error) {
	bound, err := f.relaxation.Solve(f.inst, dec)
	if err != nil {
		return nil, err
	}
	node := &Node{
		ID:        f.counter.Add(1) - 1,
		ParentID:  parentID,
		Depth:     depth,
		Decisions: dec,
		Bound:     bound,
	}
	if f.onNewNode != nil {
		f.onNewNode(node)
	}
	return node, nil
}

// NumCreated returns the total number of nodes created so far.
func (f *NodeFactory) NumCreated() int64 {
	return f.counter.Load()
}
