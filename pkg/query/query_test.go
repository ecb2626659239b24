package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/cnfsat/pkg/cnf"
	"github.com/limaJavier/cnfsat/pkg/solver"
)

func newHandler() Handler {
	return NewHandler(solver.NewDPLLSolver(solver.Options{}))
}

func TestCanHandle(t *testing.T) {
	handler := newHandler()

	t.Run("Keywords", func(t *testing.T) {
		assert.True(t, handler.CanHandle("Can you solve this SAT problem for me?"))
		assert.True(t, handler.CanHandle("here is a formula in CNF"))
		assert.True(t, handler.CanHandle("a boolean satisfiability question"))
		assert.True(t, handler.CanHandle("attached as a dimacs file"))
	})

	t.Run("HeaderPattern", func(t *testing.T) {
		assert.True(t, handler.CanHandle("please check:\np cnf 2 1\n1 2 0\n"))
	})

	t.Run("IrrelevantText", func(t *testing.T) {
		assert.False(t, handler.CanHandle("what is the weather like tomorrow"))
		assert.False(t, handler.CanHandle("convert 3 miles to kilometers"))
	})
}

func TestHandle(t *testing.T) {
	t.Run("SatisfiableProblem", func(t *testing.T) {
		// Arrange
		handler := newHandler()
		request := "Solve this SAT instance please:\np cnf 2 2\n1 2 0\n-1 2 0\nthanks!"

		// Act
		response := handler.Handle(request)

		// Assert
		assert.True(t, response.OK)
		assert.Equal(t, "SAT", response.Status)
		assert.Equal(t, "EASY", response.Hardness)
		assert.Contains(t, response.Model, 2) // var2=true is forced
		assert.Empty(t, response.Error)
	})

	t.Run("UnsatisfiableProblem", func(t *testing.T) {
		handler := newHandler()

		response := handler.Handle("p cnf 1 2\n1 0\n-1 0\n")

		assert.True(t, response.OK)
		assert.Equal(t, "UNSAT", response.Status)
		assert.Empty(t, response.Model)
	})

	t.Run("MalformedProblemNeverReachesTheSolver", func(t *testing.T) {
		handler := NewHandler(panickingSolver{})

		response := handler.Handle("a SAT request\np cnf abc 2\n1 0\n")

		assert.False(t, response.OK)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("ClauseCountMismatchSurfacesAWarning", func(t *testing.T) {
		handler := newHandler()

		response := handler.Handle("p cnf 2 3\n1 2 0\n-1 2 0\n")

		assert.True(t, response.OK)
		assert.Len(t, response.Warnings, 1)
	})

	t.Run("RelevantTextWithoutAProblem", func(t *testing.T) {
		handler := newHandler()

		response := handler.Handle("I have a SAT question but forgot to attach it")

		assert.False(t, response.OK)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("IrrelevantTextIsRejected", func(t *testing.T) {
		handler := newHandler()

		response := handler.Handle("recommend a lunch spot")

		assert.False(t, response.OK)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("TimeoutIsAHandledOutcome", func(t *testing.T) {
		handler := NewHandler(solver.NewDPLLSolver(solver.Options{MaxDecisions: 1}))
		problem := solver.GeneratePigeonhole(6)

		response := handler.Handle("a CNF problem:\n" + problem.ToDIMACS())

		assert.True(t, response.OK)
		assert.Equal(t, "TIMEOUT", response.Status)
		assert.Empty(t, response.Model)
	})
}

func TestCustomMatcher(t *testing.T) {
	handler := NewHandlerWithMatcher(
		solver.NewDPLLSolver(solver.Options{}),
		matcherFunc(func(text string) bool { return strings.Contains(text, "logic!") }),
	)

	assert.True(t, handler.CanHandle("logic!"))
	assert.False(t, handler.CanHandle("please solve this SAT problem"))
}

type matcherFunc func(string) bool

func (f matcherFunc) Matches(text string) bool { return f(text) }

// panickingSolver fails the test if the facade invokes it.
type panickingSolver struct{}

func (panickingSolver) Solve(_ cnf.Formula) (solver.Result, error) {
	panic("solver must not run on malformed input")
}
