package model

import (
	"testing"

	"github.com/limaJavier/puzzlesat/internal/sat"
	. "github.com/onsi/gomega"
)

// End-to-end property: whatever plan an oracle produces must replay to a
// state with every box on a goal, independently of which oracle ran.
func TestPlannerEndToEnd(t *testing.T) {
	layouts := map[string]struct {
		layout  []string
		horizon uint64
	}{
		"single box": {
			layout: []string{
				"#####",
				"#P..#",
				"#.B.#",
				"#.G.#",
				"#####",
			},
			horizon: 4,
		},
		"two boxes": {
			layout: []string{
				"#######",
				"#..P..#",
				"#.B.B.#",
				"#.G.G.#",
				"#######",
			},
			horizon: 8,
		},
		"detour": {
			layout: []string{
				"######",
				"#P...#",
				"#.B..#",
				"#..G.#",
				"######",
			},
			horizon: 6,
		},
	}

	solvers := map[string]sat.SATSolver{
		"gophersat": sat.NewGophersatSolver(),
		"gini":      sat.NewGiniSolver(),
	}

	for layoutName, scenario := range layouts {
		for solverName, solver := range solvers {
			t.Run(layoutName+"/"+solverName, func(t *testing.T) {
				g := NewWithT(t)

				grid, err := ParseGrid(scenario.layout)
				g.Expect(err).ToNot(HaveOccurred())

				planner := NewPlanner(solver)
				plan, err := planner.Build(grid, scenario.horizon)

				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(plan).ToNot(BeNil())
				g.Expect(len(plan)).To(BeNumerically("<=", int(scenario.horizon)))
				g.Expect(planner.Verify(grid, plan)).To(BeTrue())
			})
		}
	}
}
