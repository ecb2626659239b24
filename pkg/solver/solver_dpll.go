package solver

import (
	"fmt"
	"log"
	"time"

	"github.com/limaJavier/cnfsat/pkg/cnf"
)

type dpllSolver struct {
	opts Options
}

// NewDPLLSolver returns the built-in DPLL engine: an iterative backtracking
// search with unit propagation and pure-literal elimination. It is the only
// backend that honors every field of Options; it is deterministic for a
// given formula and options.
func NewDPLLSolver(opts Options) Solver {
	return &dpllSolver{opts: opts}
}

func (solver *dpllSolver) Solve(formula cnf.Formula) (Result, error) {
	if err := checkLiterals(formula); err != nil {
		return Result{}, err
	}
	engine := &search{
		formula:    formula,
		opts:       solver.opts,
		assignment: make([]int8, formula.NumVars+1),
	}
	if solver.opts.Timeout > 0 {
		engine.deadline = time.Now().Add(solver.opts.Timeout)
	}
	return engine.run(), nil
}

// checkLiterals guards against formulas built directly instead of through
// cnf.New: an out-of-range literal would corrupt the assignment arena.
// Empty clauses are deliberately not rejected here; the search treats them
// as immediate conflicts, so any formula containing one is Unsat.
func checkLiterals(formula cnf.Formula) error {
	for i, clause := range formula.Clauses {
		for _, literal := range clause {
			if literal == 0 {
				return cnf.FormatError{Msg: fmt.Sprintf("literal 0 in clause %d", i)}
			}
			if literal > formula.NumVars || -literal > formula.NumVars {
				return cnf.FormatError{Msg: fmt.Sprintf("literal %d in clause %d exceeds %d variables", literal, i, formula.NumVars)}
			}
		}
	}
	return nil
}

// frame records one branching decision so it can be undone and flipped.
type frame struct {
	variable int
	flipped  bool // both polarities tried
	trailLen int  // trail length right before the decision
}

// search owns all mutable state of one solving run: an arena of
// variable-indexed assignment slots, a trail journaling every assignment in
// order, and an explicit decision stack. Nothing is shared between runs.
type search struct {
	formula    cnf.Formula
	opts       Options
	assignment []int8 // 1-based; 0 unassigned, 1 true, -1 false
	trail      []int  // assigned variables, oldest first
	frames     []frame
	decisions  uint64
	conflicts  uint64
	deadline   time.Time
}

func (e *search) run() Result {
	for {
		if !e.deadline.IsZero() && time.Now().After(e.deadline) {
			return Result{Status: Timeout, Decisions: e.decisions, Conflicts: e.conflicts}
		}

		if conflict := e.propagate(); conflict {
			e.conflicts++
			if !e.backtrack() {
				return Result{Status: Unsat, Decisions: e.decisions, Conflicts: e.conflicts}
			}
			continue
		}

		if !e.opts.DisablePureLiterals {
			e.assignPureLiterals()
		}

		if e.allSatisfied() {
			return e.satResult()
		}

		if e.opts.MaxDecisions > 0 && e.decisions >= e.opts.MaxDecisions {
			return Result{Status: Timeout, Decisions: e.decisions, Conflicts: e.conflicts}
		}
		e.decide(e.selectVariable())
	}
}

// value reports the literal's truth under the current assignment: 1 true,
// -1 false, 0 unassigned.
func (e *search) value(literal int) int8 {
	variable := literal
	if variable < 0 {
		variable = -variable
	}
	assigned := e.assignment[variable]
	if assigned == 0 {
		return 0
	}
	if (assigned > 0) == (literal > 0) {
		return 1
	}
	return -1
}

// assign makes the literal true and journals the assignment on the trail.
func (e *search) assign(literal int) {
	variable := literal
	value := int8(1)
	if literal < 0 {
		variable = -literal
		value = -1
	}
	e.assignment[variable] = value
	e.trail = append(e.trail, variable)
}

// undoTo rolls the trail back to the given length, clearing every assignment
// journaled after it.
func (e *search) undoTo(trailLen int) {
	for i := len(e.trail) - 1; i >= trailLen; i-- {
		e.assignment[e.trail[i]] = 0
	}
	e.trail = e.trail[:trailLen]
}

// propagate performs unit propagation to a fixpoint. It reports a conflict
// as soon as some clause has every literal false, which covers both an empty
// clause in the input and complementary unit clauses at the root.
func (e *search) propagate() bool {
	for {
		changed := false
		for _, clause := range e.formula.Clauses {
			satisfied := false
			unassigned := 0
			unit := 0
			for _, literal := range clause {
				switch e.value(literal) {
				case 1:
					satisfied = true
				case 0:
					unassigned++
					unit = literal
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if unassigned == 0 {
				return true
			}
			if unassigned == 1 {
				e.assign(unit)
				changed = true
			}
		}
		if !changed {
			return false
		}
	}
}

// assignPureLiterals assigns every variable occurring with a single polarity
// across the clauses not yet satisfied. Such an assignment can only satisfy
// clauses, never falsify one, so it needs no conflict handling; satisfying
// clauses may expose further pure variables, hence the fixpoint loop.
func (e *search) assignPureLiterals() {
	for {
		positive := make([]bool, e.formula.NumVars+1)
		negative := make([]bool, e.formula.NumVars+1)
		for _, clause := range e.formula.Clauses {
			if e.clauseSatisfied(clause) {
				continue
			}
			for _, literal := range clause {
				if e.value(literal) != 0 {
					continue
				}
				if literal > 0 {
					positive[literal] = true
				} else {
					negative[-literal] = true
				}
			}
		}

		assignedAny := false
		for variable := 1; variable <= e.formula.NumVars; variable++ {
			if e.assignment[variable] != 0 || positive[variable] == negative[variable] {
				continue
			}
			if positive[variable] {
				e.assign(variable)
			} else {
				e.assign(-variable)
			}
			assignedAny = true
		}
		if !assignedAny {
			return
		}
	}
}

func (e *search) clauseSatisfied(clause []int) bool {
	for _, literal := range clause {
		if e.value(literal) == 1 {
			return true
		}
	}
	return false
}

func (e *search) allSatisfied() bool {
	for _, clause := range e.formula.Clauses {
		if !e.clauseSatisfied(clause) {
			return false
		}
	}
	return true
}

// selectVariable picks the next branching variable according to the
// configured policy. Ties always break on the lowest index so repeated runs
// take identical paths.
func (e *search) selectVariable() int {
	if e.opts.Selection == FirstUnassigned {
		for variable := 1; variable <= e.formula.NumVars; variable++ {
			if e.assignment[variable] == 0 {
				return variable
			}
		}
		log.Panicf("no unassigned variable left to branch on")
	}

	occurrences := make([]int, e.formula.NumVars+1)
	for _, clause := range e.formula.Clauses {
		if e.clauseSatisfied(clause) {
			continue
		}
		for _, literal := range clause {
			if e.value(literal) == 0 {
				variable := literal
				if variable < 0 {
					variable = -variable
				}
				occurrences[variable]++
			}
		}
	}
	best, bestCount := 0, -1
	for variable := 1; variable <= e.formula.NumVars; variable++ {
		if e.assignment[variable] == 0 && occurrences[variable] > bestCount {
			best, bestCount = variable, occurrences[variable]
		}
	}
	if best == 0 {
		log.Panicf("no unassigned variable left to branch on")
	}
	return best
}

// decide pushes a new frame and tries the variable positive first; the
// negative polarity is explored when a conflict flips the frame.
func (e *search) decide(variable int) {
	e.decisions++
	e.frames = append(e.frames, frame{variable: variable, trailLen: len(e.trail)})
	e.assign(variable)
}

// backtrack unwinds the decision stack after a conflict: the most recent
// unflipped frame is flipped to the negative polarity, frames with both
// polarities exhausted are popped. It reports false when the stack empties,
// which proves unsatisfiability.
func (e *search) backtrack() bool {
	for len(e.frames) > 0 {
		top := &e.frames[len(e.frames)-1]
		e.undoTo(top.trailLen)
		if top.flipped {
			e.frames = e.frames[:len(e.frames)-1]
			continue
		}
		top.flipped = true
		e.assign(-top.variable)
		return true
	}
	return false
}

// satResult finalizes the model: every declared variable gets a boolean,
// with variables that no remaining clause depends on defaulting to true.
// The model is re-checked against every clause before being handed out.
func (e *search) satResult() Result {
	model := make([]bool, e.formula.NumVars)
	for variable := 1; variable <= e.formula.NumVars; variable++ {
		model[variable-1] = e.assignment[variable] >= 0
	}
	if !AssertSolution(e.formula, model) {
		log.Panicf("solver produced a model violating the formula")
	}
	return Result{Status: Sat, Model: model, Decisions: e.decisions, Conflicts: e.conflicts}
}
