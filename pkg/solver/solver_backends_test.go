package solver

import (
	"log"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

func backends() map[string]Solver {
	return map[string]Solver{
		"dpll":      NewDPLLSolver(Options{}),
		"gophersat": NewGophersatSolver(),
		"gini":      NewGiniSolver(),
	}
}

func TestBackendsAgreeOnScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		input  string
		status Status
	}{
		{"Satisfiable", "p cnf 2 2\n1 2 0\n-1 2 0\n", Sat},
		{"ComplementaryUnits", "p cnf 1 2\n1 0\n-1 0\n", Unsat},
		{"SingleWideClause", "p cnf 3 1\n1 2 3 0\n", Sat},
	}

	for name, engine := range backends() {
		for _, scenario := range scenarios {
			t.Run(name+"/"+scenario.name, func(t *testing.T) {
				formula := mustParse(t, scenario.input)

				result, err := engine.Solve(formula)

				assert.Nil(t, err)
				assert.Equal(t, scenario.status, result.Status)
				if scenario.status == Sat {
					assert.True(t, AssertSolution(formula, result.Model))
				}
			})
		}
	}
}

func TestBackendsHandleEmptyClause(t *testing.T) {
	formula := cnf.Formula{NumVars: 2, Clauses: [][]int{{1, 2}, {}}}

	for name, engine := range backends() {
		t.Run(name, func(t *testing.T) {
			result, err := engine.Solve(formula)

			assert.Nil(t, err)
			assert.Equal(t, Unsat, result.Status)
		})
	}
}

func TestBackendsHandleEmptyFormula(t *testing.T) {
	for name, engine := range backends() {
		t.Run(name, func(t *testing.T) {
			result, err := engine.Solve(cnf.Formula{})

			assert.Nil(t, err)
			assert.Equal(t, Sat, result.Status)
		})
	}
}

// The DPLL engine and the gophersat library must reach the same verdict on
// random instances; each engine's model is checked against the formula, not
// against the other's model, since satisfiable instances admit many.
func TestDPLLAgreesWithGophersat(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	engine := NewDPLLSolver(Options{})
	reference := NewGophersatSolver()
	unsatisfiableCount := 0

	for range 30 {
		vars := rng.IntN(25) + 5
		clauses := rng.IntN(6*vars) + 1
		formula := GenerateInstance(rng, vars, clauses, 3)

		result, err := engine.Solve(formula)
		assert.Nil(t, err)
		expected, err := reference.Solve(formula)
		assert.Nil(t, err)

		assert.Equal(t, expected.Status, result.Status)
		if result.Status == Sat {
			assert.True(t, AssertSolution(formula, result.Model))
			assert.True(t, AssertSolution(formula, expected.Model))
		} else {
			unsatisfiableCount++
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}
