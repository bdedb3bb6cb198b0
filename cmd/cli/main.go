package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limaJavier/puzzlesat/internal/sat"
)

var solvers = map[string]func() sat.SATSolver{
	"gophersat": sat.NewGophersatSolver,
	"gini":      sat.NewGiniSolver,
	"kissat":    sat.NewKissatSolver,
	"cadical":   sat.NewCadicalSolver,
}

var solverName string

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "puzzlesat",
		Short: "Solves grid puzzles by translation to propositional satisfiability",
	}

	rootCmd.PersistentFlags().StringVar(&solverName, "solver", "gophersat",
		"SAT-Solver to use. Allowed values are: \"gophersat\", \"gini\", \"kissat\", \"cadical\", where \"gophersat\" is the default")

	// add sub-commands
	rootCmd.AddCommand(newSokobanCommand())
	rootCmd.AddCommand(newSudokuCommand())

	return rootCmd
}

func newSolver() (sat.SATSolver, error) {
	factory, ok := solvers[strings.ToLower(solverName)]
	if !ok {
		return nil, fmt.Errorf("%v is not a valid solver", solverName)
	}
	return factory(), nil
}
