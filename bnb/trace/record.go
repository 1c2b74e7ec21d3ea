package trace

// NodeRecord captures the outcome of processing one search-tree node.
type NodeRecord struct {
	ID       int64   // node id, unique per solve
	ParentID int64   // -1 for the root
	Depth    int     // root = 0
	Status   string  // terminal NodeStatus: pruned, infeasible, feasible, branched
	Bound    float64 // the node's relaxation objective
}
