package bnb

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SolverBundle holds unified strategy configuration, loadable from a YAML
// file. Empty string fields mean "not set" and take the engine defaults.
type SolverBundle struct {
	Relaxation  string `yaml:"relaxation"`
	Branching   string `yaml:"branching"`
	Frontier    string `yaml:"frontier"`
	Heuristic   string `yaml:"heuristic"`
	MaxNodes    int64  `yaml:"max_nodes"`
	TimeLimitMS int64  `yaml:"time_limit_ms"`
	Workers     int    `yaml:"workers"`
}

// LoadSolverBundle reads and parses a YAML solver configuration file.
func LoadSolverBundle(path string) (*SolverBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solver config: %w", err)
	}
	var bundle SolverBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing solver config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all strategy names and budget ranges in the bundle
// are valid.
func (b *SolverBundle) Validate() error {
	if !ValidRelaxations[b.Relaxation] {
		return fmt.Errorf("unknown relaxation solver %q", b.Relaxation)
	}
	if !ValidBranchings[b.Branching] {
		return fmt.Errorf("unknown branching strategy %q", b.Branching)
	}
	if !ValidFrontiers[b.Frontier] {
		return fmt.Errorf("unknown frontier %q", b.Frontier)
	}
	if !ValidHeuristics[b.Heuristic] {
		return fmt.Errorf("unknown heuristic %q", b.Heuristic)
	}
	if b.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must be non-negative, got %d", b.MaxNodes)
	}
	if b.TimeLimitMS < 0 {
		return fmt.Errorf("time_limit_ms must be non-negative, got %d", b.TimeLimitMS)
	}
	if b.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", b.Workers)
	}
	return nil
}

// SearchConfig materializes the bundle into strategy instances. Call
// Validate first; unknown names panic here by factory contract.
func (b *SolverBundle) SearchConfig() SearchConfig {
	return SearchConfig{
		Relaxation: NewRelaxationSolver(b.Relaxation),
		Branching:  NewBranchingStrategy(b.Branching),
		Frontier:   NewFrontier(b.Frontier),
		Heuristic:  NewHeuristic(b.Heuristic),
		MaxNodes:   b.MaxNodes,
		TimeLimit:  time.Duration(b.TimeLimitMS) * time.Millisecond,
		Workers:    b.Workers,
	}
}
