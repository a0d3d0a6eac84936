package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/davlem/parsat/reduction"
)

var indepSize int

var indepsetCmd = &cobra.Command{
	Use:   "indepset [file.col]",
	Short: "decide whether a graph has an independent set of size k",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraph(args, func(g *reduction.Graph) string {
			res := solve(reduction.IndependentSet(g, indepSize))
			return reduction.InterpretIndependentSet(g, indepSize, res)
		})
	},
}

var colorCmd = &cobra.Command{
	Use:   "color [file.col]",
	Short: "decide whether a graph is 3-colorable",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraph(args, func(g *reduction.Graph) string {
			return reduction.InterpretColoring(g, solve(reduction.Coloring(g)))
		})
	},
}

var hampathCmd = &cobra.Command{
	Use:   "hampath [file.col]",
	Short: "decide whether a graph has a Hamiltonian path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraph(args, func(g *reduction.Graph) string {
			return reduction.InterpretHamiltonianPath(g, solve(reduction.HamiltonianPath(g)))
		})
	},
}

func runGraph(args []string, run func(*reduction.Graph) string) error {
	f, err := input(args)
	if err != nil {
		return errors.Wrap(err, "could not open input")
	}
	defer func(f io.Closer) { _ = f.Close() }(f)
	g, err := reduction.ParseGraph(f)
	if err != nil {
		return errors.Wrap(err, "could not parse graph")
	}
	fmt.Println(run(g))
	return nil
}

func init() {
	indepsetCmd.Flags().IntVarP(&indepSize, "size", "k", 2, "size of the independent set to look for")
	rootCmd.AddCommand(indepsetCmd, colorCmd, hampathCmd)
}
