package model

import (
	"testing"

	"github.com/limaJavier/puzzlesat/internal/sat"
	"github.com/stretchr/testify/assert"
)

func TestSudokuSolveUniqueGrid(t *testing.T) {
	// Arrange: every blank is forced, so the solution is unique
	grid := [][]int{
		{1, 2, 3, 0},
		{3, 4, 1, 0},
		{2, 1, 4, 0},
		{0, 0, 0, 0},
	}
	expected := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}

	for name, solver := range map[string]sat.SATSolver{
		"gophersat": sat.NewGophersatSolver(),
		"gini":      sat.NewGiniSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			// Act
			solved, err := NewSudokuSolver(solver).Solve(grid)

			// Assert
			assert.Nil(t, err)
			assert.Equal(t, expected, solved)
		})
	}
}

func TestSudokuSolveFullGridRoundTrip(t *testing.T) {
	// Arrange: no unknowns, the solver must hand the grid back as is
	grid := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}

	// Act
	solved, err := NewSudokuSolver(sat.NewGophersatSolver()).Solve(grid)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, grid, solved)
}

func TestSudokuSolveUnsatisfiable(t *testing.T) {
	// Arrange: two 1s in the first row
	grid := [][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Act
	solved, err := NewSudokuSolver(sat.NewGophersatSolver()).Solve(grid)

	// Assert: the input comes back unchanged
	assert.Nil(t, err)
	assert.Equal(t, grid, solved)
}

func TestSudokuValidation(t *testing.T) {
	solver := NewSudokuSolver(sat.NewGophersatSolver())

	t.Run("dimension without integer square root", func(t *testing.T) {
		grid := [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}
		_, err := solver.Solve(grid)
		assert.ErrorIs(t, err, ErrNotSquare)
	})

	t.Run("empty grid", func(t *testing.T) {
		_, err := solver.Solve(nil)
		assert.ErrorIs(t, err, ErrNotSquare)
	})

	t.Run("ragged rows", func(t *testing.T) {
		grid := [][]int{
			{0, 0, 0, 0},
			{0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}
		_, err := solver.Solve(grid)
		assert.ErrorIs(t, err, ErrRaggedGrid)
	})

	t.Run("value out of range", func(t *testing.T) {
		grid := [][]int{
			{5, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}
		_, err := solver.Solve(grid)
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})
}
