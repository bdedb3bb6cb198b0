package model

import (
	"slices"

	"github.com/samber/lo"
)

// verifyPlan replays a plan against the parsed initial state under push
// physics and reports whether every box ends on a goal cell. A move into a
// wall, a push into a wall or a push into another box invalidates the plan.
func verifyPlan(grid Grid, plan []Move) bool {
	player := grid.Player
	boxes := slices.Clone(grid.Boxes)

	occupied := make(map[Position]int, len(boxes)) // position -> box
	for box, position := range boxes {
		occupied[position] = box
	}

	for _, move := range plan {
		deltaRow, deltaCol := move.Delta()
		next := Position{Row: player.Row + deltaRow, Col: player.Col + deltaCol}
		if !grid.Valid(next) {
			return false
		}

		if box, pushing := occupied[next]; pushing {
			beyond := Position{Row: next.Row + deltaRow, Col: next.Col + deltaCol}
			if !grid.Valid(beyond) {
				return false
			}
			if _, blocked := occupied[beyond]; blocked {
				return false
			}

			delete(occupied, next)
			occupied[beyond] = box
			boxes[box] = beyond
		}

		player = next
	}

	goals := make(map[Position]bool, len(grid.Goals))
	for _, goal := range grid.Goals {
		goals[goal] = true
	}

	// Check that every box rests on some goal cell
	return !lo.SomeBy(boxes, func(position Position) bool {
		return !goals[position]
	})
}
