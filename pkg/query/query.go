// Package query is the integration point through which surrounding systems
// reach the solving engine: it decides whether free-form text plausibly
// carries a satisfiability request, extracts the DIMACS problem from it and
// runs the configured solver, wrapping the outcome in a uniform response.
package query

import (
	"strings"

	"github.com/limaJavier/cnfsat/pkg/cnf"
	"github.com/limaJavier/cnfsat/pkg/solver"
)

// Handler routes textual requests to a solver. CanHandle is a best-effort
// relevance gate, not a parser: a true answer only means the text is worth
// attempting, Handle may still fail on it.
type Handler interface {
	CanHandle(text string) bool
	Handle(text string) Response
}

// Response is the uniform envelope returned for every handled request. OK
// reports whether the request was processed to a verdict; an unsatisfiable
// or timed-out formula is still a processed request. Model holds signed
// literals and is populated only on a SAT verdict.
type Response struct {
	OK       bool
	Status   string
	Model    []int
	Hardness string
	Warnings []string
	Error    string
}

type handler struct {
	engine  solver.Solver
	matcher RelevanceMatcher
}

// NewHandler returns a Handler using the default keyword matcher as its
// relevance gate.
func NewHandler(engine solver.Solver) Handler {
	return &handler{engine: engine, matcher: NewKeywordMatcher()}
}

// NewHandlerWithMatcher returns a Handler with a caller-supplied relevance
// strategy.
func NewHandlerWithMatcher(engine solver.Solver, matcher RelevanceMatcher) Handler {
	return &handler{engine: engine, matcher: matcher}
}

func (h *handler) CanHandle(text string) bool {
	return h.matcher.Matches(text)
}

func (h *handler) Handle(text string) Response {
	if !h.CanHandle(text) {
		return Response{Error: "request does not describe a satisfiability problem"}
	}
	dimacs, ok := extractDIMACS(text)
	if !ok {
		return Response{Error: "no DIMACS problem found in request"}
	}

	formula, warnings, err := cnf.Parse(strings.NewReader(dimacs))
	if err != nil {
		return Response{Warnings: warnings, Error: err.Error()}
	}

	result, err := h.engine.Solve(formula)
	if err != nil {
		return Response{Warnings: warnings, Error: err.Error()}
	}

	response := Response{
		OK:       true,
		Status:   result.Status.String(),
		Hardness: solver.EstimateHardness(formula).String(),
		Warnings: warnings,
	}
	if result.Status == solver.Sat {
		response.Model = solver.ModelLiterals(result.Model)
	}
	return response
}

// extractDIMACS cuts the DIMACS problem out of surrounding prose: everything
// from the problem header up to the last line that still belongs to the
// problem (comments and integer-token clause lines).
func extractDIMACS(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if headerPattern.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	problem := []string{strings.TrimSpace(lines[start])}
	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == 'c' || line == "%" || isClauseLine(line) {
			problem = append(problem, line)
			continue
		}
		break
	}
	return strings.Join(problem, "\n"), true
}

func isClauseLine(line string) bool {
	for _, field := range strings.Fields(line) {
		for i, r := range field {
			if r == '-' && i == 0 && len(field) > 1 {
				continue
			}
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
