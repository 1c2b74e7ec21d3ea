package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bnbkit/bnbkit/bnb"
	"github.com/bnbkit/bnbkit/bnb/trace"
)

var (
	// CLI flags for the solve command
	instancePath string // path to the YAML instance file
	bundlePath   string // optional YAML solver bundle; flags below override it
	logLevel     string // log verbosity level
	relaxation   string // relaxation solver name
	branching    string // branching strategy name
	frontier     string // frontier ordering name
	heuristic    string // heuristic name
	maxNodes     int64  // node budget (0 = unlimited)
	timeLimitMS  int64  // wall-clock budget in milliseconds (0 = unlimited)
	workers      int    // >1 runs the parallel driver
	showTrace    bool   // print a trace summary after the solve
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bnbkit",
	Short: "Branch-and-bound solver for 0/1 knapsack instances",
}

// solveCmd runs one branch-and-bound solve from CLI flags
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a knapsack instance",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if instancePath == "" {
			logrus.Fatalf("Instance file not provided. Exiting.")
		}
		inst, err := LoadInstance(instancePath)
		if err != nil {
			logrus.Fatalf("Unable to load instance: %v", err)
		}

		bundle := &bnb.SolverBundle{
			Relaxation:  relaxation,
			Branching:   branching,
			Frontier:    frontier,
			Heuristic:   heuristic,
			MaxNodes:    maxNodes,
			TimeLimitMS: timeLimitMS,
			Workers:     workers,
		}
		if bundlePath != "" {
			loaded, err := bnb.LoadSolverBundle(bundlePath)
			if err != nil {
				logrus.Fatalf("Unable to load solver bundle: %v", err)
			}
			mergeBundle(loaded, bundle)
			bundle = loaded
		}
		if err := bundle.Validate(); err != nil {
			logrus.Fatalf("Invalid solver configuration: %v", err)
		}

		cfg := bundle.SearchConfig()
		var searchTrace *trace.SearchTrace
		if showTrace {
			searchTrace = trace.NewSearchTrace()
			cfg.Trace = searchTrace
		}

		logrus.Infof("Solving %d-item instance (capacity %g) with relaxation=%s branching=%s frontier=%s",
			inst.NumItems(), inst.Capacity, orDefault(bundle.Relaxation, "capacity-checked"),
			orDefault(bundle.Branching, "first-unfixed"), orDefault(bundle.Frontier, "best-bound"))

		start := time.Now()
		var result *bnb.SolveResult
		if cfg.Workers > 1 {
			result, err = bnb.SolveParallel(context.Background(), inst, cfg)
		} else {
			result, err = bnb.Solve(inst, cfg)
		}
		if err != nil {
			logrus.Fatalf("Solve failed: %v", err)
		}

		printResult(result, time.Since(start))
		if searchTrace != nil {
			printTraceSummary(searchTrace)
		}
	},
}

// mergeBundle overlays non-zero CLI flag values onto a loaded bundle.
func mergeBundle(dst, flags *bnb.SolverBundle) {
	if flags.Relaxation != "" {
		dst.Relaxation = flags.Relaxation
	}
	if flags.Branching != "" {
		dst.Branching = flags.Branching
	}
	if flags.Frontier != "" {
		dst.Frontier = flags.Frontier
	}
	if flags.Heuristic != "" {
		dst.Heuristic = flags.Heuristic
	}
	if flags.MaxNodes != 0 {
		dst.MaxNodes = flags.MaxNodes
	}
	if flags.TimeLimitMS != 0 {
		dst.TimeLimitMS = flags.TimeLimitMS
	}
	if flags.Workers != 0 {
		dst.Workers = flags.Workers
	}
}

func orDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// printResult displays the solve outcome at the end of the run.
func printResult(result *bnb.SolveResult, elapsed time.Duration) {
	fmt.Println("=== Solve Result ===")
	fmt.Printf("Status          : %s\n", result.Status)
	if result.BestSelection != nil {
		fmt.Printf("Best value      : %g\n", result.BestValue)
		fmt.Printf("Best selection  : %v\n", result.BestSelection)
	} else {
		fmt.Println("Best value      : none (no feasible solution found)")
	}
	fmt.Printf("Nodes explored  : %d\n", result.Stats.NodesExplored)
	fmt.Printf("Nodes created   : %d\n", result.Stats.NodesCreated)
	fmt.Printf("Nodes pruned    : %d\n", result.Stats.NodesPruned)
	fmt.Printf("Elapsed         : %s\n", elapsed.Round(time.Microsecond))
}

func printTraceSummary(searchTrace *trace.SearchTrace) {
	summary := trace.Summarize(searchTrace)
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Processed nodes : %d\n", summary.Total)
	fmt.Printf("Max depth       : %d\n", summary.MaxDepth)
	for status, count := range summary.ByStatus {
		fmt.Printf("  %-12s : %d\n", status, count)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	solveCmd.Flags().StringVar(&instancePath, "instance", "", "Path to the YAML instance file")
	solveCmd.Flags().StringVar(&bundlePath, "bundle", "", "Path to a YAML solver bundle (flags override it)")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Strategy selection
	solveCmd.Flags().StringVar(&relaxation, "relaxation", "", "Relaxation solver (weight-blind, capacity-checked, fractional)")
	solveCmd.Flags().StringVar(&branching, "branching", "", "Branching strategy (first-unfixed, best-density, best-density-nofallback)")
	solveCmd.Flags().StringVar(&frontier, "frontier", "", "Frontier ordering (best-bound, depth-first)")
	solveCmd.Flags().StringVar(&heuristic, "heuristic", "", "Incumbent heuristic (none, greedy-fill)")

	// Budgets and parallelism
	solveCmd.Flags().Int64Var(&maxNodes, "max-nodes", 0, "Node budget (0 = run to proven optimum)")
	solveCmd.Flags().Int64Var(&timeLimitMS, "time-limit-ms", 0, "Wall-clock budget in milliseconds (0 = unlimited)")
	solveCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (>1 enables the parallel driver)")
	solveCmd.Flags().BoolVar(&showTrace, "trace", false, "Print a node-decision trace summary")

	// Attach `solve` as a subcommand to `root`
	rootCmd.AddCommand(solveCmd)
}
