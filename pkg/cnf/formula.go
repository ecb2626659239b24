package cnf

import (
	"fmt"
	"strings"
)

// Formula is an immutable CNF formula: a conjunction of disjunctive clauses
// over the variables 1..NumVars. A literal is a nonzero signed integer whose
// absolute value identifies the variable; a negative literal asserts the
// variable false. Build instances through New or Parse so the invariants
// (non-empty clauses, literals in range) hold; no component mutates a
// Formula after construction.
type Formula struct {
	NumVars int
	Clauses [][]int
}

// New validates clauses against numVars and returns the corresponding
// Formula. An empty clause yields a MalformedClauseError; a zero or
// out-of-range literal yields a FormatError.
func New(numVars int, clauses [][]int) (Formula, error) {
	if numVars < 0 {
		return Formula{}, FormatError{Msg: fmt.Sprintf("negative variable count %d", numVars)}
	}
	for i, clause := range clauses {
		if len(clause) == 0 {
			return Formula{}, MalformedClauseError{Clause: i}
		}
		for _, literal := range clause {
			if literal == 0 {
				return Formula{}, FormatError{Msg: fmt.Sprintf("literal 0 in clause %d", i)}
			}
			if literal > numVars || -literal > numVars {
				return Formula{}, FormatError{Msg: fmt.Sprintf("literal %d in clause %d exceeds %d variables", literal, i, numVars)}
			}
		}
	}
	return Formula{NumVars: numVars, Clauses: clauses}, nil
}

func (f Formula) NumClauses() int {
	return len(f.Clauses)
}

// ToDIMACS serializes the formula in the DIMACS CNF format, one clause per
// 0-terminated line.
func (f Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.NumVars, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
