package model

import (
	"errors"
	"fmt"
)

const (
	TagWall   = '#'
	TagEmpty  = '.'
	TagBox    = 'B'
	TagGoal   = 'G'
	TagPlayer = 'P'
)

var (
	ErrEmptyLayout  = errors.New("layout is empty")
	ErrRaggedLayout = errors.New("layout rows have different lengths")
	ErrNoPlayer     = errors.New("layout contains no player")
	ErrManyPlayers  = errors.New("layout contains more than one player")
)

// Position is a cell of the grid, row-major from the top-left corner.
type Position struct {
	Row int
	Col int
}

// Grid is the parsed, immutable layout of a pushing puzzle: dimensions,
// wall and goal sets, the ordered initial box positions and the player's
// starting cell.
type Grid struct {
	Rows   int
	Cols   int
	Walls  map[Position]bool
	Goals  []Position
	Boxes  []Position
	Player Position

	valid []Position
}

// ParseGrid scans every cell of a raw layout and classifies it into
// wall, goal, box, player or empty. The parse is pure: the same layout
// always yields a structurally equal Grid.
func ParseGrid(layout []string) (Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return Grid{}, ErrEmptyLayout
	}

	grid := Grid{
		Rows:  len(layout),
		Cols:  len(layout[0]),
		Walls: map[Position]bool{},
	}

	playerFound := false
	for row, line := range layout {
		if len(line) != grid.Cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, row, len(line), grid.Cols)
		}

		for col, tag := range line {
			position := Position{Row: row, Col: col}
			switch tag {
			case TagWall:
				grid.Walls[position] = true
			case TagGoal:
				grid.Goals = append(grid.Goals, position)
			case TagBox:
				grid.Boxes = append(grid.Boxes, position)
			case TagPlayer:
				if playerFound {
					return Grid{}, ErrManyPlayers
				}
				grid.Player = position
				playerFound = true
			}
		}
	}

	if !playerFound {
		return Grid{}, ErrNoPlayer
	}

	// Precompute the wall-free cells in row-major order: every clause family
	// iterates this list, so its order fixes the clause set's determinism.
	for row := range grid.Rows {
		for col := range grid.Cols {
			position := Position{Row: row, Col: col}
			if !grid.Walls[position] {
				grid.valid = append(grid.valid, position)
			}
		}
	}

	return grid, nil
}

// Valid reports whether a position is inside the grid and not a wall.
func (grid Grid) Valid(position Position) bool {
	return position.Row >= 0 && position.Row < grid.Rows &&
		position.Col >= 0 && position.Col < grid.Cols &&
		!grid.Walls[position]
}

// ValidPositions returns the wall-free cells in row-major order.
func (grid Grid) ValidPositions() []Position {
	return grid.valid
}
