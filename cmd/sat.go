package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/davlem/parsat/dpll"
)

var satCmd = &cobra.Command{
	Use:   "sat [file.cnf]",
	Short: "decide satisfiability of a DIMACS CNF formula",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := input(args)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer f.Close()
		cnf, err := dpll.ParseCNF(f)
		if err != nil {
			return errors.Wrap(err, "could not parse problem")
		}
		fmt.Print(solve(cnf))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(satCmd)
}
