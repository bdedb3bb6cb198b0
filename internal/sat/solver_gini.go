package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const giniSatisfiable = 1

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by go-air/gini.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (gs *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.New()
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(0)
	}

	if g.Solve() != giniSatisfiable {
		return nil, nil
	}

	maxVar := int64(g.MaxVar())
	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		value := false
		if variable <= maxVar {
			value = g.Value(z.Var(variable).Pos())
		}
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}

	return solution, nil
}
