package solver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

type giniSolver struct{}

// NewGiniSolver returns a backend delegating to the gini CDCL library. Like
// the gophersat backend it runs to completion and never returns Timeout.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(formula cnf.Formula) (Result, error) {
	if err := checkLiterals(formula); err != nil {
		return Result{}, err
	}
	if len(formula.Clauses) == 0 {
		return Result{Status: Sat, Model: defaultModel(formula.NumVars)}, nil
	}

	engine := gini.NewV(formula.NumVars)
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			if literal > 0 {
				engine.Add(z.Var(literal).Pos())
			} else {
				engine.Add(z.Var(-literal).Neg())
			}
		}
		engine.Add(0)
	}

	if engine.Solve() != 1 {
		return Result{Status: Unsat}, nil
	}
	model := make([]bool, formula.NumVars)
	for variable := 1; variable <= formula.NumVars; variable++ {
		model[variable-1] = engine.Value(z.Var(variable).Pos())
	}
	return Result{Status: Sat, Model: model}, nil
}
