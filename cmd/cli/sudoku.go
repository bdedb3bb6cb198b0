package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limaJavier/puzzlesat/internal/model"
)

func newSudokuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <path>",
		Short: "Returns a solved sudoku board",
		Long: `Returns a solved sudoku board read from a JSON file:
{
  "grid": [
    [1, 0, 0, 4],
    [0, 0, 1, 0],
    [0, 3, 0, 0],
    [4, 0, 0, 2]
  ]
}
Zeros mark unknown cells. The dimension must have an integer square root.
If the board cannot be completed it is printed back unchanged.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveSudoku(args[0])
		},
	}
}

func solveSudoku(file string) error {
	input, err := model.SudokuInputFromJson(file)
	if err != nil {
		return err
	}

	solver, err := newSolver()
	if err != nil {
		return err
	}

	solved, err := model.NewSudokuSolver(solver).Solve(input.Grid)
	if err != nil {
		return err
	}

	for _, row := range solved {
		for col, value := range row {
			if col > 0 {
				fmt.Printf(" ")
			}
			fmt.Printf("%d", value)
		}
		fmt.Printf("\n")
	}

	return nil
}
