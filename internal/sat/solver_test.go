package sat

import (
	"log"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGophersatSatisfiable(t *testing.T) {
	solver := NewGophersatSolver()
	unsatisfiableCount := 0

	for seed := range uint64(10) {
		literals := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateSATInstance(seed, literals, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestGiniSatisfiable(t *testing.T) {
	solver := NewGiniSolver()
	unsatisfiableCount := 0

	for seed := range uint64(10) {
		literals := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateSATInstance(seed, literals, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestSolversAgree(t *testing.T) {
	// Arrange
	gophersat := NewGophersatSolver()
	gini := NewGiniSolver()

	for seed := range uint64(10) {
		literals := uint64(rand.IntN(30) + 1)
		clauses := rand.IntN(100) + 1
		instance := GenerateSATInstance(seed, literals, clauses)

		// Act
		gophersatSolution, err1 := gophersat.Solve(instance)
		giniSolution, err2 := gini.Solve(instance)

		// Assert
		assert.Nil(t, err1)
		assert.Nil(t, err2)
		assert.Equal(t, gophersatSolution == nil, giniSolution == nil)
	}
}

func TestUnsatisfiableInstance(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 1,
		Clauses:   [][]int64{{1}, {-1}},
	}

	for name, solver := range map[string]SATSolver{
		"gophersat": NewGophersatSolver(),
		"gini":      NewGiniSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			// Act
			solution, err := solver.Solve(instance)

			// Assert
			assert.Nil(t, err)
			assert.Nil(t, solution)
		})
	}
}

func TestSolutionCoversDeclaredVariables(t *testing.T) {
	// Arrange: variable 3 is declared but never mentioned in a clause
	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, 2}, {-1}},
	}

	for name, solver := range map[string]SATSolver{
		"gophersat": NewGophersatSolver(),
		"gini":      NewGiniSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			// Act
			solution, err := solver.Solve(instance)

			// Assert
			assert.Nil(t, err)
			assert.Len(t, solution, 3)
			assert.True(t, AssertSATSolution(instance, solution))
			assert.True(t, solution.Assignment()[2])
		})
	}
}

func TestGenerateSATInstanceDeterministic(t *testing.T) {
	// Act
	first := GenerateSATInstance(7, 20, 50)
	second := GenerateSATInstance(7, 20, 50)
	other := GenerateSATInstance(8, 20, 50)

	// Assert
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	for _, clause := range first.Clauses {
		assert.NotEmpty(t, clause)
	}
}

func TestParseSolutionWrappedWitness(t *testing.T) {
	// Arrange: large witnesses wrap across several "v" lines, and some
	// solvers separate literals with multiple spaces
	output := "c comment\ns SATISFIABLE\nv 1 -2  3\nv -4 5\nv 6 0\n"

	// Act
	solution := parseSolution(output)

	// Assert
	assert.Equal(t, SATSolution{1, -2, 3, -4, 5, 6}, solution)
}

func TestParseSolutionEmptyWitness(t *testing.T) {
	// Act
	solution := parseSolution("s SATISFIABLE\nv 0\n")

	// Assert: satisfiable with no literals is not the unsatisfiable nil
	assert.NotNil(t, solution)
	assert.Empty(t, solution)
}

func TestParseSolutionNoWitness(t *testing.T) {
	// Act
	solution := parseSolution("s UNSATISFIABLE\n")

	// Assert
	assert.Nil(t, solution)
}

func TestToDIMACS(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, -2}, {2, 3}},
	}

	// Act
	dimacs := instance.ToDIMACS()

	// Assert
	assert.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 0\n", dimacs)
}
