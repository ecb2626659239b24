package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/cnfsat/pkg/cnf"
	"github.com/limaJavier/cnfsat/pkg/solver"
)

// The sweep crosses the 3-SAT phase transition (~4.2 clauses per variable)
// so the hardness estimate can be compared against observed solving time.
var ratios = []float64{1.0, 2.0, 3.0, 4.0, 4.2, 4.5, 5.0, 6.0}

const (
	clauseLen          = 3
	instancesPerRatio  = 5
	dpllDecisionBudget = 500_000
)

type SolverType int

const (
	dpll SolverType = iota
	dpllFrequent
	gophersat
	gini
)

var solverTypes = map[SolverType]string{
	dpll:         "dpll",
	dpllFrequent: "dpll-frequent",
	gophersat:    "gophersat",
	gini:         "gini",
}

type BenchmarkResult struct {
	Solver    SolverType
	Vars      int
	Clauses   int
	Ratio     float64
	Hardness  solver.Hardness
	Duration  time.Duration
	Decisions uint64
	Status    solver.Status
}

func main() {
	varsPtr := flag.Int("vars", 75, "Number of variables per generated instance")
	seedPtr := flag.Uint64("seed", 1, "Seed for instance generation; a fixed seed makes runs comparable")
	outPtr := flag.String("out", "benchmark_results.csv", "Path of the CSV file to write")
	flag.Parse()

	solvers := getSolvers()
	rng := rand.New(rand.NewPCG(*seedPtr, *seedPtr))
	results := make([]BenchmarkResult, 0, len(ratios)*instancesPerRatio*len(solvers))

	for _, ratio := range ratios {
		clauses := int(ratio * float64(*varsPtr))
		for range instancesPerRatio {
			formula := solver.GenerateInstance(rng, *varsPtr, clauses, clauseLen)
			for _, solverType := range []SolverType{dpll, dpllFrequent, gophersat, gini} {
				fmt.Printf("Benchmarking solver \"%v\" on %v variables, %v clauses (ratio %.2f)\n", solverTypes[solverType], *varsPtr, clauses, ratio)
				results = append(results, measure(solverType, solvers[solverType], formula, ratio))
			}
		}
	}

	toCsv(results, *outPtr)
}

func getSolvers() map[SolverType]solver.Solver {
	return map[SolverType]solver.Solver{
		dpll:         solver.NewDPLLSolver(solver.Options{MaxDecisions: dpllDecisionBudget}),
		dpllFrequent: solver.NewDPLLSolver(solver.Options{MaxDecisions: dpllDecisionBudget, Selection: solver.MostFrequent}),
		gophersat:    solver.NewGophersatSolver(),
		gini:         solver.NewGiniSolver(),
	}
}

func measure(solverType SolverType, engine solver.Solver, formula cnf.Formula, ratio float64) BenchmarkResult {
	start := time.Now()
	result, err := engine.Solve(formula)
	if err != nil {
		log.Fatalf("an error occurred while benchmarking solver \"%v\": %v", solverTypes[solverType], err)
	}
	if result.Status == solver.Sat && !solver.AssertSolution(formula, result.Model) {
		log.Fatalf("solver \"%v\" returned an invalid model", solverTypes[solverType])
	}

	return BenchmarkResult{
		Solver:    solverType,
		Vars:      formula.NumVars,
		Clauses:   formula.NumClauses(),
		Ratio:     ratio,
		Hardness:  solver.EstimateHardness(formula),
		Duration:  time.Since(start),
		Decisions: result.Decisions,
		Status:    result.Status,
	}
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Vars", "Clauses", "Ratio", "Hardness", "Duration(ms)", "Decisions", "Status"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	records := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			solverTypes[result.Solver],
			fmt.Sprintf("%d", result.Vars),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%.2f", result.Ratio),
			result.Hardness.String(),
			fmt.Sprintf("%d", result.Duration.Milliseconds()),
			fmt.Sprintf("%d", result.Decisions),
			result.Status.String(),
		}
	})
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
