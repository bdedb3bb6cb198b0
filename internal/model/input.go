package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// PuzzleInput is a pushing puzzle as stored on disk: a named layout plus the
// horizon bound the plan may span.
type PuzzleInput struct {
	Name    string
	Layout  []string
	Horizon uint64
}

// SudokuInput is a grid puzzle as stored on disk, zeros marking unknowns.
type SudokuInput struct {
	Grid [][]int
}

func PuzzleInputFromJson(file string) (PuzzleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return PuzzleInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return PuzzleInput{}, err
	}

	var input PuzzleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return PuzzleInput{}, err
	}

	return input, nil
}

func SudokuInputFromJson(file string) (SudokuInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SudokuInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return SudokuInput{}, err
	}

	var input SudokuInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return SudokuInput{}, err
	}

	return input, nil
}
