package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limaJavier/puzzlesat/internal/model"
)

func newSokobanCommand() *cobra.Command {
	var horizon uint64

	command := &cobra.Command{
		Use:   "sokoban <path>",
		Short: "Returns a push plan for a box-pushing puzzle",
		Long: `Returns a push plan for a box-pushing puzzle read from a JSON file:
{
  "name": "classic",
  "horizon": 8,
  "layout": [
    "#####",
    "#P.B#",
    "#..G#",
    "#####"
  ]
}
The layout tags are '#' wall, '.' empty, 'B' box, 'G' goal, 'P' player.
The horizon in the file is used unless --horizon is set.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveSokoban(args[0], horizon)
		},
	}

	command.Flags().Uint64Var(&horizon, "horizon", 0, "Number of timesteps the plan may span; overrides the input file's horizon when positive")

	return command
}

func solveSokoban(file string, horizon uint64) error {
	input, err := model.PuzzleInputFromJson(file)
	if err != nil {
		return err
	}
	if horizon == 0 {
		horizon = input.Horizon
	}

	grid, err := model.ParseGrid(input.Layout)
	if err != nil {
		return err
	}

	solver, err := newSolver()
	if err != nil {
		return err
	}

	planner := model.NewPlanner(solver)
	plan, err := planner.Build(grid, horizon)
	if err != nil {
		return err
	} else if plan == nil {
		fmt.Println("Not satisfiable")
		return nil
	}

	for _, move := range plan {
		fmt.Printf("%v ", move)
	}
	fmt.Println()

	return nil
}
