package model

import (
	"github.com/limaJavier/puzzlesat/internal/sat"
)

// Planner builds a bounded-horizon push plan for a grid puzzle.
type Planner interface {
	// Build encodes the puzzle over the given horizon, solves it and decodes
	// the witness into an ordered plan. A nil plan with a nil error means the
	// puzzle is unsatisfiable within the horizon; a satisfiable puzzle always
	// yields a non-nil (possibly empty) plan.
	Build(grid Grid, horizon uint64) ([]Move, error)

	// Verify replays a plan against the initial state under push physics and
	// reports whether every box ends on a goal cell.
	Verify(grid Grid, plan []Move) bool
}

func NewPlanner(solver sat.SATSolver) Planner {
	return &satPlanner{solver: solver}
}

type satPlanner struct {
	solver sat.SATSolver
}

func (planner *satPlanner) Build(grid Grid, horizon uint64) ([]Move, error) {
	encoder := newPlanEncoder(grid, horizon)

	solution, err := planner.solver.Solve(encoder.encode())
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	return encoder.decode(solution)
}

func (planner *satPlanner) Verify(grid Grid, plan []Move) bool {
	return verifyPlan(grid, plan)
}

// planEncoder is scoped to one Build call: one grid, one horizon, one
// variable allocation. The player is entity 0 and box b is entity 1+b;
// timesteps run over [0, horizon].
type planEncoder struct {
	grid    Grid
	horizon uint64
	boxes   uint64
	indexer Indexer
}

func newPlanEncoder(grid Grid, horizon uint64) planEncoder {
	boxes := uint64(len(grid.Boxes))
	return planEncoder{
		grid:    grid,
		horizon: horizon,
		boxes:   boxes,
		indexer: NewIndexer(1+boxes, uint64(grid.Rows), uint64(grid.Cols), horizon+1),
	}
}

func (encoder planEncoder) player(position Position, step uint64) int64 {
	return encoder.indexer.Index(0, uint64(position.Row), uint64(position.Col), step)
}

func (encoder planEncoder) box(box uint64, position Position, step uint64) int64 {
	return encoder.indexer.Index(1+box, uint64(position.Row), uint64(position.Col), step)
}

// encode builds the full clause set. The families are generated in a fixed
// order so the resulting instance is deterministic for a given grid and
// horizon.
func (encoder planEncoder) encode() sat.SAT {
	satInstance := sat.SAT{
		Variables: encoder.indexer.Variables(),
		Clauses:   [][]int64{},
	}

	satInstance.Clauses = append(satInstance.Clauses, encoder.initialConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.existenceConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.exclusivityConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.overlapConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.movementConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.pushConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.persistenceConstraints()...)
	satInstance.Clauses = append(satInstance.Clauses, encoder.goalConstraints()...)

	return satInstance
}

// initialConstraints fixes the player and every box to their parsed starting
// positions at step 0.
func (encoder planEncoder) initialConstraints() [][]int64 {
	clauses := [][]int64{{encoder.player(encoder.grid.Player, 0)}}
	for box, position := range encoder.grid.Boxes {
		clauses = append(clauses, []int64{encoder.box(uint64(box), position, 0)})
	}
	return clauses
}

// existenceConstraints assert that every entity occupies at least one
// wall-free position at every step.
func (encoder planEncoder) existenceConstraints() [][]int64 {
	valid := encoder.grid.ValidPositions()

	clauses := [][]int64{}
	for step := uint64(0); step <= encoder.horizon; step++ {
		clause := make([]int64, 0, len(valid))
		for _, position := range valid {
			clause = append(clause, encoder.player(position, step))
		}
		clauses = append(clauses, clause)

		for box := range encoder.boxes {
			clause := make([]int64, 0, len(valid))
			for _, position := range valid {
				clause = append(clause, encoder.box(box, position, step))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// exclusivityConstraints forbid an entity from occupying two positions at the
// same step: a pairwise at-most-one over the wall-free cells, quadratic in
// their count. This is the baseline encoding; a sequential-counter encoding
// would trade clause count for auxiliary variables at larger scales.
func (encoder planEncoder) exclusivityConstraints() [][]int64 {
	valid := encoder.grid.ValidPositions()

	clauses := [][]int64{}
	for step := uint64(0); step <= encoder.horizon; step++ {
		for i := range len(valid) - 1 {
			for j := i + 1; j < len(valid); j++ {
				clauses = append(clauses, []int64{-encoder.player(valid[i], step), -encoder.player(valid[j], step)})
				for box := range encoder.boxes {
					clauses = append(clauses, []int64{-encoder.box(box, valid[i], step), -encoder.box(box, valid[j], step)})
				}
			}
		}
	}
	return clauses
}

// overlapConstraints forbid the player and a box, or two distinct boxes, from
// sharing a position at the same step.
func (encoder planEncoder) overlapConstraints() [][]int64 {
	clauses := [][]int64{}
	for step := uint64(0); step <= encoder.horizon; step++ {
		for _, position := range encoder.grid.ValidPositions() {
			for box := range encoder.boxes {
				clauses = append(clauses, []int64{-encoder.player(position, step), -encoder.box(box, position, step)})
			}
			for boxA := uint64(0); boxA+1 < encoder.boxes; boxA++ {
				for boxB := boxA + 1; boxB < encoder.boxes; boxB++ {
					clauses = append(clauses, []int64{-encoder.box(boxA, position, step), -encoder.box(boxB, position, step)})
				}
			}
		}
	}
	return clauses
}

// movementConstraints are the player's frame axiom: a player at a position
// stays there or steps to one of its wall-free orthogonal neighbors.
func (encoder planEncoder) movementConstraints() [][]int64 {
	clauses := [][]int64{}
	for step := uint64(0); step < encoder.horizon; step++ {
		for _, position := range encoder.grid.ValidPositions() {
			clause := []int64{-encoder.player(position, step), encoder.player(position, step+1)}

			for _, move := range moves {
				deltaRow, deltaCol := move.Delta()
				neighbor := Position{Row: position.Row + deltaRow, Col: position.Col + deltaCol}
				if encoder.grid.Valid(neighbor) {
					clause = append(clause, encoder.player(neighbor, step+1))
				}
			}

			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// pushConstraints encode the physics rule: with the player at p and a box on
// the adjacent cell q in some direction whose next cell r is also wall-free,
// the next step has either the box still on q, or the box on r with the
// player on q. Both outcomes share the precondition "player at p and box at
// q", so the family is two implication clauses per (box, p, direction, step).
func (encoder planEncoder) pushConstraints() [][]int64 {
	clauses := [][]int64{}
	for step := uint64(0); step < encoder.horizon; step++ {
		for box := range encoder.boxes {
			for _, position := range encoder.grid.ValidPositions() {
				for _, move := range moves {
					deltaRow, deltaCol := move.Delta()
					boxPosition := Position{Row: position.Row + deltaRow, Col: position.Col + deltaCol}
					beyondPosition := Position{Row: position.Row + 2*deltaRow, Col: position.Col + 2*deltaCol}

					if !encoder.grid.Valid(boxPosition) || !encoder.grid.Valid(beyondPosition) {
						continue
					}

					precondition := []int64{-encoder.player(position, step), -encoder.box(box, boxPosition, step)}

					stayOrWalk := append(append([]int64{}, precondition...), encoder.box(box, boxPosition, step+1), encoder.player(boxPosition, step+1))
					stayOrPush := append(append([]int64{}, precondition...), encoder.box(box, boxPosition, step+1), encoder.box(box, beyondPosition, step+1))

					clauses = append(clauses, stayOrWalk, stayOrPush)
				}
			}
		}
	}
	return clauses
}

// persistenceConstraints are the boxes' frame axiom: a box that is not in a
// pushable configuration (player directly behind it, destination wall-free)
// stays where it is.
func (encoder planEncoder) persistenceConstraints() [][]int64 {
	clauses := [][]int64{}
	for step := uint64(0); step < encoder.horizon; step++ {
		for box := range encoder.boxes {
			for _, position := range encoder.grid.ValidPositions() {
				clause := []int64{-encoder.box(box, position, step), encoder.box(box, position, step+1)}

				for _, move := range moves {
					deltaRow, deltaCol := move.Delta()
					pusherPosition := Position{Row: position.Row - deltaRow, Col: position.Col - deltaCol}
					targetPosition := Position{Row: position.Row + deltaRow, Col: position.Col + deltaCol}
					if encoder.grid.Valid(pusherPosition) && encoder.grid.Valid(targetPosition) {
						clause = append(clause, encoder.player(pusherPosition, step))
					}
				}

				clauses = append(clauses, clause)
			}
		}
	}
	return clauses
}

// goalConstraints require each box to sit on some goal cell at the final
// step. The disjunction is deliberately loose: no box-to-goal pairing is
// imposed, distinctness already follows from the overlap family.
func (encoder planEncoder) goalConstraints() [][]int64 {
	clauses := [][]int64{}
	for box := range encoder.boxes {
		clause := make([]int64, 0, len(encoder.grid.Goals))
		for _, goal := range encoder.grid.Goals {
			clause = append(clause, encoder.box(box, goal, encoder.horizon))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
