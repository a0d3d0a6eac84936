// Package cmd implements the parsat command line: a SAT front end reading
// DIMACS CNF and three graph front ends that reduce their problem to CNF
// before handing it to the solver.
package cmd

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davlem/parsat/dpll"
)

var (
	parallel bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "parsat",
	Short: "parsat decides satisfiability of CNF formulas and graph problems reduced to CNF",
	Long: `parsat is a DPLL SAT solver. It reads a problem from a file argument or
from standard input and prints the answer.

The sat command reads DIMACS CNF and prints either a model or
"Unsatisfiable.". indepset, color and hampath read a DIMACS graph ("p edge"
header, "e u v" lines), solve the corresponding decision problem through a
reduction to CNF and print the answer in terms of the graph.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&parallel, "parallel", "p", false, "share the search among one worker per logical CPU")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree. It is the only entry point used by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// input returns the stream to read the instance from: the file named by the
// first argument, or stdin when no argument is given.
func input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

// solve dispatches to the engine selected by the --parallel flag.
func solve(cnf *dpll.CNF) dpll.Result {
	if parallel {
		return dpll.SolveParallel(cnf)
	}
	return dpll.Solve(cnf)
}
