package trace

// Summary aggregates a trace: total processed nodes, counts per terminal
// status, and the deepest processed node.
type Summary struct {
	Total    int
	ByStatus map[string]int
	MaxDepth int
}

// Summarize computes a Summary over the trace's records.
func Summarize(t *SearchTrace) Summary {
	s := Summary{ByStatus: make(map[string]int)}
	for _, r := range t.Records() {
		s.Total++
		s.ByStatus[r.Status]++
		if r.Depth > s.MaxDepth {
			s.MaxDepth = r.Depth
		}
	}
	return s
}
