package solver

import (
	"time"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

// Status is the outcome of a solving attempt.
type Status int

const (
	// Sat means a satisfying assignment was found.
	Sat Status = iota
	// Unsat means the search space was exhausted without finding one.
	Unsat
	// Timeout means a deadline or decision budget ran out before the search
	// could conclude. Running out of budget is an expected outcome on hard
	// instances, not an error.
	Timeout
)

func (s Status) String() string {
	return [...]string{"SAT", "UNSAT", "TIMEOUT"}[s]
}

// SelectionPolicy determines which unassigned variable a solver branches on.
// Both policies break ties on the lowest variable index, so a solver's output
// is reproducible for a given formula and policy.
type SelectionPolicy int

const (
	// FirstUnassigned branches on the lowest-indexed unassigned variable.
	FirstUnassigned SelectionPolicy = iota
	// MostFrequent branches on the unassigned variable with the most
	// occurrences in clauses not yet satisfied.
	MostFrequent
)

// Options bounds and parameterizes a solving run. The zero value means an
// unbounded search with the FirstUnassigned policy and pure-literal
// elimination enabled.
type Options struct {
	MaxDecisions        uint64        // 0 = unbounded
	Timeout             time.Duration // 0 = no deadline
	Selection           SelectionPolicy
	DisablePureLiterals bool
}

// Result is the answer to a solving attempt. Model is non-nil only when
// Status is Sat; it maps variable v to Model[v-1] and covers every declared
// variable, with variables unconstrained by the formula defaulting to true.
// The model is owned by the caller; the solver keeps no reference to it.
type Result struct {
	Status    Status
	Model     []bool
	Decisions uint64
	Conflicts uint64
}

type Solver interface {
	Solve(cnf.Formula) (Result, error) // Returns an error only for a structurally invalid formula; Unsat and Timeout are Result statuses
}
