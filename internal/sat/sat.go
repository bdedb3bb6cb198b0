package sat

import (
	"fmt"
	"io"
	"strings"
)

// SAT is a propositional formula in conjunctive normal form. Variables are
// 1-based DIMACS identifiers; a negative literal is the negation of its
// variable. Clause order is irrelevant to the semantics but is preserved so
// that solver input stays deterministic for a given instance.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// WriteDIMACS streams the instance in DIMACS-CNF format without materializing
// it as a single string.
func (s SAT) WriteDIMACS(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", s.Variables, len(s.Clauses)); err != nil {
		return err
	}
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			if _, err := fmt.Fprintf(w, "%d ", literal); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "0\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder)
	return builder.String()
}
