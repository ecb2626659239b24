package solver

import "github.com/limaJavier/cnfsat/pkg/cnf"

// Hardness is a static difficulty estimate for a formula, derived purely
// from its clause-to-variable ratio.
type Hardness int

const (
	// Easy means the formula is underconstrained: likely satisfiable and
	// likely cheap to solve.
	Easy Hardness = iota
	// Hard means the ratio is at or past the random 3-SAT phase transition,
	// where search cost peaks.
	Hard
)

func (h Hardness) String() string {
	return [...]string{"EASY", "HARD"}[h]
}

// PhaseTransitionRatio is the clause-to-variable ratio around which random
// 3-SAT instances flip from almost-always-satisfiable to almost-always-
// unsatisfiable. The constant is a versioned policy: classifications must
// stay reproducible, so it is not tuned per release.
const PhaseTransitionRatio = 4.2

// EstimateHardness classifies the expected solving difficulty of a formula
// from its clause-to-variable ratio alone; it never inspects clause
// contents. A formula without variables has nothing to search over and is
// classified Easy.
func EstimateHardness(formula cnf.Formula) Hardness {
	if formula.NumVars == 0 {
		return Easy
	}
	ratio := float64(formula.NumClauses()) / float64(formula.NumVars)
	if ratio >= PhaseTransitionRatio {
		return Hard
	}
	return Easy
}
