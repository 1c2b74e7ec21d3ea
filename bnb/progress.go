package bnb

import (
	"time"

	"github.com/sirupsen/logrus"
)

// progressTracker logs per-iteration search state: explored vs created
// nodes, current depth and status, the node's bound, and the global
// upper/lower bounds. Logged at debug level so large runs stay quiet by
// default.
type progressTracker struct {
	start      time.Time
	iterations int64
}

func (p *progressTracker) onStart(inst *Instance) {
	p.start = time.Now()
	logrus.Debugf("search started: %d items, capacity %g", inst.NumItems(), inst.Capacity)
}

func (p *progressTracker) onNodeProcessed(node *Node, status NodeStatus, created int64, ub, lb float64) {
	p.iterations++
	logrus.Debugf("[iter %04d] explored=%d/%d depth=%d status=%s bound=%.1f ub=%.1f lb=%.1f",
		p.iterations, p.iterations, created, node.Depth, status, node.Bound.Objective, ub, lb)
}

func (p *progressTracker) onIncumbent(node *Node, value float64) {
	logrus.Infof("new incumbent at node %d (depth %d): value %.1f", node.ID, node.Depth, value)
}

func (p *progressTracker) onEnd(result *SolveResult) {
	logrus.Infof("search finished in %s: status=%s explored=%d created=%d pruned=%d",
		time.Since(p.start).Round(time.Microsecond), result.Status,
		result.Stats.NodesExplored, result.Stats.NodesCreated, result.Stats.NodesPruned)
}
