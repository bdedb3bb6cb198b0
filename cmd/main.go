package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/puzzlesat/internal/model"
	"github.com/limaJavier/puzzlesat/internal/sat"
)

func main() {
	const File string = "../test/puzzles/two_boxes.json"

	input, err := model.PuzzleInputFromJson(File)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	grid, err := model.ParseGrid(input.Layout)
	if err != nil {
		log.Fatalf("cannot parse layout: %v", err)
	}

	solver := sat.NewGophersatSolver()
	// solver := sat.NewGiniSolver()
	// solver := sat.NewKissatSolver()
	// solver := sat.NewCadicalSolver()
	planner := model.NewPlanner(solver)

	plan, err := planner.Build(grid, input.Horizon)
	if err != nil {
		log.Fatal(err)
	} else if plan == nil {
		fmt.Println("Not satisfiable")
		return
	}

	fmt.Printf("Plan for %v (%v steps): ", input.Name, len(plan))
	for _, move := range plan {
		fmt.Printf("%v ", move)
	}
	fmt.Printf("\n")

	if !planner.Verify(grid, plan) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
