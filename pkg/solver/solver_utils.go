package solver

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

// GenerateInstance builds a random k-SAT formula with the given shape. Each
// clause draws clauseLen distinct variables and negates each with
// probability 1/2. The caller supplies the source, so a fixed seed yields a
// fixed instance.
func GenerateInstance(rng *rand.Rand, vars, clauses, clauseLen int) cnf.Formula {
	if clauseLen > vars {
		log.Panicf("clause length %d exceeds %d variables", clauseLen, vars)
	}
	formula := cnf.Formula{
		NumVars: vars,
		Clauses: make([][]int, clauses),
	}
	for i := range clauses {
		picked := make(map[int]bool, clauseLen)
		clause := make([]int, 0, clauseLen)
		for len(clause) < clauseLen {
			variable := rng.IntN(vars) + 1
			if picked[variable] {
				continue
			}
			picked[variable] = true
			if rng.Float32() < 0.5 {
				variable = -variable
			}
			clause = append(clause, variable)
		}
		formula.Clauses[i] = clause
	}
	return formula
}

// GeneratePigeonhole builds the pigeonhole formula PHP(n, n-1): n pigeons,
// n-1 holes, every pigeon in some hole, no two pigeons sharing one. The
// family is unsatisfiable for n >= 2 and requires exponentially many
// decisions from any resolution-based search, which makes it a reliable
// budget-exhaustion fixture.
func GeneratePigeonhole(pigeons int) cnf.Formula {
	holes := pigeons - 1
	variable := func(pigeon, hole int) int {
		return pigeon*holes + hole + 1
	}

	formula := cnf.Formula{NumVars: pigeons * holes}
	for pigeon := 0; pigeon < pigeons; pigeon++ {
		clause := make([]int, holes)
		for hole := 0; hole < holes; hole++ {
			clause[hole] = variable(pigeon, hole)
		}
		formula.Clauses = append(formula.Clauses, clause)
	}
	for hole := 0; hole < holes; hole++ {
		for first := 0; first < pigeons; first++ {
			for second := first + 1; second < pigeons; second++ {
				formula.Clauses = append(formula.Clauses, []int{
					-variable(first, hole),
					-variable(second, hole),
				})
			}
		}
	}
	return formula
}

// AssertSolution checks that the model is total over the formula's variables
// and makes every clause true.
func AssertSolution(formula cnf.Formula, model []bool) bool {
	if len(model) != formula.NumVars {
		return false
	}
	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if model[variable-1] == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// ModelLiterals renders a model as signed literals: variable v appears as v
// when true and -v when false.
func ModelLiterals(model []bool) []int {
	return lo.Map(model, func(value bool, i int) int {
		if value {
			return i + 1
		}
		return -(i + 1)
	})
}

// FormatModel renders a model as a competition-style value line,
// e.g. "v 1 -2 3 0".
func FormatModel(model []bool) string {
	literals := lo.Map(ModelLiterals(model), func(literal int, _ int) string {
		return strconv.Itoa(literal)
	})
	return fmt.Sprintf("v %s 0", strings.Join(literals, " "))
}

// ParseModel extracts the signed literals from the "v" lines of
// competition-style solver output. Panics on a literal that is not an
// integer or contradicts an earlier one.
func ParseModel(output string) []int {
	tokens := lo.FlatMap(
		lo.Filter(strings.Split(output, "\n"), func(line string, _ int) bool {
			return strings.HasPrefix(line, "v ")
		}),
		func(line string, _ int) []string {
			return strings.Fields(line[2:])
		},
	)

	seen := mapset.NewSet[int]()
	var literals []int
	for _, token := range tokens {
		literal, err := strconv.Atoi(token)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		if literal == 0 {
			break
		}
		if seen.Contains(-literal) {
			log.Panicf("contradictory literal %d in solver output", literal)
		}
		seen.Add(literal)
		literals = append(literals, literal)
	}
	return literals
}
