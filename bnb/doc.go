// Package bnb provides a branch-and-bound tree-search engine for binary
// decision problems, instantiated on the 0/1 knapsack problem.
//
// # Reading Guide
//
// Start with these three files to understand the search kernel:
//   - decisions.go: the ternary decision vector and its SplitOn operation
//   - relaxation.go: bounding solvers that compute optimistic objectives
//   - search.go: the driver loop (pop, prune, accept, branch, push)
//
// # Architecture
//
// The engine explores the space of item-inclusion decisions by partitioning
// it into subproblems. Each subproblem is bounded by a relaxation; any
// subproblem whose bound cannot beat the best integer solution found so far
// (the incumbent) is discarded without expansion. The search terminates with
// a proven-optimal incumbent when the frontier empties, or reports the
// best-known solution when a node or time budget runs out first.
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - RelaxationSolver: compute an upper-bound RelaxedSolution for a subproblem
//   - BranchingStrategy: split a node into child decision vectors
//   - Frontier: order the not-yet-expanded nodes (best-bound heap, DFS stack)
//   - Heuristic: derive feasible integral solutions from a relaxation
//
// Implementations are selected by name through factory constructors
// (NewRelaxationSolver, NewBranchingStrategy, NewFrontier, NewHeuristic),
// or declared in a YAML SolverBundle.
package bnb
