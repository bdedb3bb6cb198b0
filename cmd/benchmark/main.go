package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/puzzlesat/internal/model"
	"github.com/limaJavier/puzzlesat/internal/sat"
)

const (
	puzzleDirectory = "../../test/puzzles/"
	outputFile      = "benchmark.csv"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	failed
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	failed:        "failed",
}

var solvers = map[string]func() sat.SATSolver{
	"gophersat": sat.NewGophersatSolver,
	"gini":      sat.NewGiniSolver,
}

// Sweep every bundled puzzle across the in-process solvers and a range of
// horizons around the bundled one, recording outcome and wall time per run.
func main() {
	entries, err := os.ReadDir(puzzleDirectory)
	if err != nil {
		log.Fatalf("cannot read puzzle directory: %v", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return path.Join(puzzleDirectory, entry.Name()), !entry.IsDir() && path.Ext(entry.Name()) == ".json"
	})

	records := [][]string{{"puzzle", "solver", "horizon", "result", "plan_length", "milliseconds"}}

	for _, file := range files {
		input, err := model.PuzzleInputFromJson(file)
		if err != nil || len(input.Layout) == 0 {
			continue // sudoku inputs live in the same directory
		}

		grid, err := model.ParseGrid(input.Layout)
		if err != nil {
			log.Fatalf("cannot parse layout of %v: %v", file, err)
		}

		for solverName, newSolver := range solvers {
			planner := model.NewPlanner(newSolver())

			for horizon := uint64(1); horizon <= input.Horizon+2; horizon++ {
				start := time.Now()
				plan, err := planner.Build(grid, horizon)
				elapsed := time.Since(start)

				result := classify(plan, err)
				if result == solved && !planner.Verify(grid, plan) {
					log.Fatalf("verification failed for %v at horizon %v", file, horizon)
				}

				records = append(records, []string{
					input.Name,
					solverName,
					fmt.Sprintf("%d", horizon),
					resultTypes[result],
					fmt.Sprintf("%d", len(plan)),
					fmt.Sprintf("%d", elapsed.Milliseconds()),
				})
			}
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write records: %v", err)
	}

	fmt.Printf("Wrote %v records to %v\n", len(records)-1, outputFile)
}

func classify(plan []model.Move, err error) ResultType {
	if err != nil {
		return failed
	} else if plan == nil {
		return unsatisfiable
	}
	return solved
}
