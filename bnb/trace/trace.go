// Package trace records per-node decisions made during a branch-and-bound
// solve, for offline inspection of search behavior (how many nodes were
// pruned, at what depth the incumbent was found, and so on). Recording is
// opt-in; a nil trace costs nothing.
package trace

import "sync"

// SearchTrace collects node records during a solve. Safe for concurrent use
// so parallel workers can share one trace.
type SearchTrace struct {
	mu      sync.Mutex
	records []NodeRecord
}

// NewSearchTrace creates a SearchTrace ready for recording.
func NewSearchTrace() *SearchTrace {
	return &SearchTrace{records: make([]NodeRecord, 0)}
}

// Record appends a node record.
func (t *SearchTrace) Record(r NodeRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, r)
}

// Records returns a copy of the collected records in recording order.
func (t *SearchTrace) Records() []NodeRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]NodeRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records collected so far.
func (t *SearchTrace) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
