package sat

// SATSolver decides satisfiability of a SAT instance. Solve returns a
// satisfying assignment if the instance is satisfiable, else returns nil
// (these are valid outputs where error shall be nil).
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}
