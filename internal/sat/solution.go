package sat

import (
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// SATSolution is a complete assignment expressed as signed DIMACS literals:
// a positive literal means the variable is true, a negative one false.
type SATSolution []int64

// Assignment returns the set of variables the solution makes true, for
// constant-time truth lookups during decoding.
func (solution SATSolution) Assignment() map[int64]bool {
	assignment := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			assignment[literal] = true
		}
	}
	return assignment
}

// parseSolution extracts the witness from a DIMACS solver's standard output.
// Large witnesses wrap across multiple "v" lines, so every one of them is
// read up to the terminating 0 literal.
func parseSolution(solverOutput string) SATSolution {
	resultLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})

	if len(resultLines) == 0 {
		return nil
	}

	solution := SATSolution{}
	for _, line := range resultLines {
		for _, token := range strings.Fields(line[1:]) {
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			if value == 0 { // terminating literal
				return solution
			}
			solution = append(solution, value)
		}
	}

	return solution
}
