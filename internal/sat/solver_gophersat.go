package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process CDCL solver. Unlike the external
// backends it needs no binary on PATH, so it is the default oracle.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gophersat *gophersatSolver) Solve(sat SAT) (SATSolution, error) {
	cnf := make([][]int, len(sat.Clauses))
	for i, clause := range sat.Clauses {
		cnf[i] = make([]int, len(clause))
		for j, literal := range clause {
			cnf[i][j] = int(literal)
		}
	}

	s := solver.New(solver.ParseSlice(cnf))
	if s.Solve() != solver.Sat {
		return nil, nil
	}

	// Model is indexed by variable-1; variables the instance declares but the
	// clauses never mention are unconstrained and reported as false.
	model := s.Model()
	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		value := false
		if variable <= int64(len(model)) {
			value = model[variable-1]
		}
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}

	return solution, nil
}
