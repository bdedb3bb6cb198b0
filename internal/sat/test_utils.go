package sat

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// GenerateSATInstance returns a random instance over the given number of
// variables, deterministic for a given seed. Each clause picks every variable
// with probability 1/2 and a random polarity; a clause that comes out empty
// gets a single random literal so the instance stays well-formed.
func GenerateSATInstance(seed uint64, variables uint64, clauses int) SAT {
	random := rand.New(rand.NewPCG(seed, 0))

	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		clause := make([]int64, 0, variables)
		for variable := int64(1); variable <= int64(variables); variable++ {
			if random.IntN(2) == 0 {
				continue
			}

			literal := variable
			if random.IntN(2) == 0 {
				literal = -literal
			}
			clause = append(clause, literal)
		}

		if len(clause) == 0 {
			literal := 1 + random.Int64N(int64(variables))
			if random.IntN(2) == 0 {
				literal = -literal
			}
			clause = append(clause, literal)
		}

		instance.Clauses[i] = clause
	}

	return instance
}

// AssertSATSolution reports whether a solution is a consistent assignment
// (no duplicate nor contradictory literals) that satisfies every clause of
// the instance.
func AssertSATSolution(instance SAT, solution SATSolution) bool {
	assignment := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if assignment[literal] || assignment[-literal] {
			return false
		}
		assignment[literal] = true
	}

	return !lo.SomeBy(instance.Clauses, func(clause []int64) bool {
		return !lo.SomeBy(clause, func(literal int64) bool {
			return assignment[literal]
		})
	})
}
