package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/limaJavier/puzzlesat/internal/sat"
)

var (
	ErrRaggedGrid      = errors.New("grid rows have different lengths")
	ErrNotSquare       = errors.New("grid dimension has no integer square root")
	ErrValueOutOfRange = errors.New("cell value out of range")
)

// SudokuSolver fills a square grid of integers so that every row, column and
// block holds each value exactly once. Zero marks an unknown cell.
type SudokuSolver interface {
	// Solve returns a fully determined grid, or the input unchanged when no
	// completion exists.
	Solve(grid [][]int) ([][]int, error)
}

func NewSudokuSolver(solver sat.SATSolver) SudokuSolver {
	return &satSudoku{solver: solver}
}

type satSudoku struct {
	solver sat.SATSolver
}

func (sudoku *satSudoku) Solve(grid [][]int) ([][]int, error) {
	encoder, err := newSudokuEncoder(grid)
	if err != nil {
		return nil, err
	}

	solution, err := sudoku.solver.Solve(encoder.encode())
	if err != nil {
		return nil, err
	} else if solution == nil { // Return the input unchanged if the SAT instance is not satisfiable
		return grid, nil
	}

	return encoder.decode(solution)
}

// sudokuEncoder is scoped to one Solve call. It reuses the planner's dense
// indexer with a single entity: the proposition (row, col, value) means "this
// cell holds this value", with the value axis standing in for time.
type sudokuEncoder struct {
	grid    [][]int
	size    uint64
	block   uint64
	indexer Indexer
}

func newSudokuEncoder(grid [][]int) (sudokuEncoder, error) {
	size := uint64(len(grid))
	block := uint64(math.Sqrt(float64(size)))
	if size == 0 || block*block != size {
		return sudokuEncoder{}, fmt.Errorf("%w: %d", ErrNotSquare, size)
	}

	for row, line := range grid {
		if uint64(len(line)) != size {
			return sudokuEncoder{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, row, len(line), size)
		}
		for col, value := range line {
			if value < 0 || uint64(value) > size {
				return sudokuEncoder{}, fmt.Errorf("%w: %d at (%d, %d)", ErrValueOutOfRange, value, row, col)
			}
		}
	}

	return sudokuEncoder{
		grid:    grid,
		size:    size,
		block:   block,
		indexer: NewIndexer(1, size, size, size),
	}, nil
}

func (encoder sudokuEncoder) cell(row, col, value uint64) int64 {
	return encoder.indexer.Index(0, row, col, value)
}

func (encoder sudokuEncoder) encode() sat.SAT {
	satInstance := sat.SAT{
		Variables: encoder.indexer.Variables(),
		Clauses:   [][]int64{},
	}

	satInstance.Clauses = append(satInstance.Clauses, encoder.rowConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.columnConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.blockConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.cellConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.givenConstraints()...)

	return satInstance
}

// rowConstraints assert that every row contains every value.
func (encoder sudokuEncoder) rowConstraints() [][]int64 {
	clauses := [][]int64{}
	for row := range encoder.size {
		for value := range encoder.size {
			clause := make([]int64, 0, encoder.size)
			for col := range encoder.size {
				clause = append(clause, encoder.cell(row, col, value))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// columnConstraints assert that every column contains every value.
func (encoder sudokuEncoder) columnConstraints() [][]int64 {
	clauses := [][]int64{}
	for col := range encoder.size {
		for value := range encoder.size {
			clause := make([]int64, 0, encoder.size)
			for row := range encoder.size {
				clause = append(clause, encoder.cell(row, col, value))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// blockConstraints assert that every block contains every value.
func (encoder sudokuEncoder) blockConstraints() [][]int64 {
	clauses := [][]int64{}
	for blockRow := uint64(0); blockRow < encoder.size; blockRow += encoder.block {
		for blockCol := uint64(0); blockCol < encoder.size; blockCol += encoder.block {
			for value := range encoder.size {
				clause := make([]int64, 0, encoder.size)
				for deltaRow := range encoder.block {
					for deltaCol := range encoder.block {
						clause = append(clause, encoder.cell(blockRow+deltaRow, blockCol+deltaCol, value))
					}
				}
				clauses = append(clauses, clause)
			}
		}
	}
	return clauses
}

// cellConstraints forbid a cell from holding two values, pairwise.
func (encoder sudokuEncoder) cellConstraints() [][]int64 {
	clauses := [][]int64{}
	for row := range encoder.size {
		for col := range encoder.size {
			for valueA := uint64(0); valueA+1 < encoder.size; valueA++ {
				for valueB := valueA + 1; valueB < encoder.size; valueB++ {
					clauses = append(clauses, []int64{-encoder.cell(row, col, valueA), -encoder.cell(row, col, valueB)})
				}
			}
		}
	}
	return clauses
}

// givenConstraints fix the known cells as unit clauses.
func (encoder sudokuEncoder) givenConstraints() [][]int64 {
	clauses := [][]int64{}
	for row, line := range encoder.grid {
		for col, value := range line {
			if value != 0 {
				clauses = append(clauses, []int64{encoder.cell(uint64(row), uint64(col), uint64(value-1))})
			}
		}
	}
	return clauses
}

// decode fills a fresh grid from the positive literals, requiring exactly one
// value per cell.
func (encoder sudokuEncoder) decode(solution sat.SATSolution) ([][]int, error) {
	solved := make([][]int, encoder.size)
	for row := range solved {
		solved[row] = make([]int, encoder.size)
	}

	for _, literal := range solution {
		if literal <= 0 || literal > int64(encoder.indexer.Variables()) {
			continue
		}
		_, row, col, value := encoder.indexer.Attributes(literal)
		if solved[row][col] != 0 {
			return nil, fmt.Errorf("%w: cell (%d, %d) holds both %d and %d", ErrInconsistentAssignment, row, col, solved[row][col], value+1)
		}
		solved[row][col] = int(value + 1)
	}

	for row := range encoder.size {
		for col := range encoder.size {
			if solved[row][col] == 0 {
				return nil, fmt.Errorf("%w: cell (%d, %d) holds no value", ErrInconsistentAssignment, row, col)
			}
		}
	}

	return solved, nil
}
