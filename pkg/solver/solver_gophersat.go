package solver

import (
	gophersat "github.com/crillab/gophersat/solver"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

type gophersatSolver struct{}

// NewGophersatSolver returns a backend delegating to the gophersat CDCL
// library. It answers Sat or Unsat only: gophersat runs to completion, so
// the budget fields of Options do not apply and no Timeout is ever returned.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(formula cnf.Formula) (Result, error) {
	if err := checkLiterals(formula); err != nil {
		return Result{}, err
	}
	if len(formula.Clauses) == 0 {
		return Result{Status: Sat, Model: defaultModel(formula.NumVars)}, nil
	}

	problem := gophersat.ParseSlice(formula.Clauses)
	engine := gophersat.New(problem)
	if engine.Solve() != gophersat.Sat {
		return Result{Status: Unsat}, nil
	}

	// Gophersat only knows about the variables that occur in clauses;
	// declared variables beyond that default to true, like the DPLL engine.
	model := defaultModel(formula.NumVars)
	for i, value := range engine.Model() {
		if i < len(model) {
			model[i] = value
		}
	}
	return Result{Status: Sat, Model: model}, nil
}

func defaultModel(numVars int) []bool {
	model := make([]bool, numVars)
	for i := range model {
		model[i] = true
	}
	return model
}
