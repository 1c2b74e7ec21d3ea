// Package testutil provides shared test infrastructure for the bnbkit
// engine: brute-force knapsack enumeration used as ground truth by property
// tests in bnb/. It works on plain slices so it can be imported from the
// bnb package's own tests without a cycle.
package testutil

// BruteForceKnapsack enumerates every subset of items and returns the best
// total value achievable within capacity, plus one optimal 0/1 selection.
// Intended for small instances (at most ~20 items).
func BruteForceKnapsack(values, weights []float64, capacity float64) (float64, []float64) {
	n := len(values)
	bestValue := 0.0
	bestMask := 0
	for mask := 0; mask < 1<<n; mask++ {
		var value, weight float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				value += values[i]
				weight += weights[i]
			}
		}
		if weight <= capacity && value > bestValue {
			bestValue = value
			bestMask = mask
		}
	}
	selection := make([]float64, n)
	for i := 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			selection[i] = 1
		}
	}
	return bestValue, selection
}

// BestCompletion returns the best feasible 0/1 completion value of a
// partial assignment: fixed entries are -1 (free), 0, or 1. Returns
// ok=false when no completion fits the capacity.
func BestCompletion(values, weights []float64, capacity float64, fixed []int) (float64, bool) {
	n := len(values)
	free := make([]int, 0, n)
	var baseValue, baseWeight float64
	for i, f := range fixed {
		switch f {
		case 1:
			baseValue += values[i]
			baseWeight += weights[i]
		case -1:
			free = append(free, i)
		}
	}
	best := 0.0
	found := false
	for mask := 0; mask < 1<<len(free); mask++ {
		value, weight := baseValue, baseWeight
		for b, i := range free {
			if mask&(1<<b) != 0 {
				value += values[i]
				weight += weights[i]
			}
		}
		if weight <= capacity && (!found || value > best) {
			best = value
			found = true
		}
	}
	return best, found
}
