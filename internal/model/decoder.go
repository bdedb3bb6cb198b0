package model

import (
	"errors"
	"fmt"

	"github.com/limaJavier/puzzlesat/internal/sat"
)

// ErrInconsistentAssignment reports a witness that violates an encoder
// invariant: an entity with zero or multiple positions at some step, or a
// position delta no single move can produce. It indicates an encoder or
// oracle bug and is never papered over by guessing.
var ErrInconsistentAssignment = errors.New("inconsistent assignment")

// decode inverts a witness assignment into an ordered plan: it extracts the
// player's unique position at every step and maps consecutive position deltas
// to moves. Stays (zero deltas) change nothing and are pruned.
func (encoder planEncoder) decode(solution sat.SATSolution) ([]Move, error) {
	assignment := solution.Assignment()

	trajectory := make([]Position, 0, encoder.horizon+1)
	for step := uint64(0); step <= encoder.horizon; step++ {
		position, err := encoder.playerPosition(assignment, step)
		if err != nil {
			return nil, err
		}
		trajectory = append(trajectory, position)
	}

	plan := make([]Move, 0, encoder.horizon)
	for step := uint64(0); step < encoder.horizon; step++ {
		deltaRow := trajectory[step+1].Row - trajectory[step].Row
		deltaCol := trajectory[step+1].Col - trajectory[step].Col

		if deltaRow == 0 && deltaCol == 0 {
			continue
		}

		move, err := moveFromDelta(deltaRow, deltaCol)
		if err != nil {
			return nil, fmt.Errorf("%w between steps %d and %d", err, step, step+1)
		}
		plan = append(plan, move)
	}

	return plan, nil
}

// playerPosition scans the wall-free cells for the one the assignment puts
// the player on at the given step, rejecting zero or multiple matches.
func (encoder planEncoder) playerPosition(assignment map[int64]bool, step uint64) (Position, error) {
	found := make([]Position, 0, 1)
	for _, position := range encoder.grid.ValidPositions() {
		if assignment[encoder.player(position, step)] {
			found = append(found, position)
		}
	}

	if len(found) != 1 {
		return Position{}, fmt.Errorf("%w: player occupies %d positions at step %d", ErrInconsistentAssignment, len(found), step)
	}
	return found[0], nil
}

func moveFromDelta(deltaRow, deltaCol int) (Move, error) {
	for _, move := range moves {
		moveRow, moveCol := move.Delta()
		if deltaRow == moveRow && deltaCol == moveCol {
			return move, nil
		}
	}
	return 0, fmt.Errorf("%w: player moved by (%d, %d)", ErrInconsistentAssignment, deltaRow, deltaCol)
}
