package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/limaJavier/cnfsat/pkg/cnf"
	"github.com/limaJavier/cnfsat/pkg/solver"
)

var (
	validSolvers    = []string{"dpll", "gophersat", "gini"}
	validSelections = []string{"first", "frequent"}
	selections      = map[string]solver.SelectionPolicy{
		"first":    solver.FirstUnassigned,
		"frequent": solver.MostFrequent,
	}
	solvers = map[string]func(solver.Options) solver.Solver{
		"dpll":      solver.NewDPLLSolver,
		"gophersat": func(solver.Options) solver.Solver { return solver.NewGophersatSolver() },
		"gini":      func(solver.Options) solver.Solver { return solver.NewGiniSolver() },
	}
)

// config mirrors the optional JSON settings file; every field acts as a
// default that explicit flags override.
type config struct {
	Solver       string
	MaxDecisions uint64 `mapstructure:"maxDecisions"`
	TimeoutMs    int64  `mapstructure:"timeoutMs"`
	Selection    string
}

func loadConfig(path string) config {
	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}
	var cfg config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		log.Fatalf("cannot decode config file: %v", err)
	}
	return cfg
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the DIMACS CNF input file; if empty, the problem is read from the Standard Input")
	solverPtr := flag.String("solver", "dpll", "Solver backend to use. Allowed values are: \"dpll\", \"gophersat\", \"gini\", where \"dpll\" is the default")
	selectionPtr := flag.String("selection", "first", "Branching variable selection used by the dpll backend. Allowed values are: \"first\" (lowest-indexed unassigned variable) and \"frequent\" (most occurrences in open clauses)")
	timeoutPtr := flag.Duration("timeout", 0, "Give up and report UNKNOWN after this duration (dpll backend only), e.g. 30s; 0 disables the deadline")
	maxDecisionsPtr := flag.Uint64("max-decisions", 0, "Give up and report UNKNOWN after this many branching decisions (dpll backend only); 0 means unbounded")
	estimatePtr := flag.Bool("estimate", false, "Only print the hardness estimate, without solving")
	configPathPtr := flag.String("config", "", "Path to an optional JSON config file providing defaults for the other flags")
	flag.Parse()

	// Config values act as defaults for flags the user did not set explicitly
	if *configPathPtr != "" {
		cfg := loadConfig(*configPathPtr)
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if cfg.Solver != "" && !set["solver"] {
			*solverPtr = cfg.Solver
		}
		if cfg.Selection != "" && !set["selection"] {
			*selectionPtr = cfg.Selection
		}
		if cfg.MaxDecisions > 0 && !set["max-decisions"] {
			*maxDecisionsPtr = cfg.MaxDecisions
		}
		if cfg.TimeoutMs > 0 && !set["timeout"] {
			*timeoutPtr = time.Duration(cfg.TimeoutMs) * time.Millisecond
		}
	}
	solverStr := strings.ToLower(*solverPtr)
	selection := strings.ToLower(*selectionPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if !slices.Contains(validSelections, selection) {
		log.Fatalf("%v is not a valid selection policy", selection)
	}

	// Extract input
	var (
		input []byte
		err   error
	)
	if *filePathPtr == "" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(*filePathPtr)
	}
	if err != nil {
		log.Fatalf("cannot read input: %v", err)
	}

	formula, warnings, err := cnf.Parse(strings.NewReader(string(input)))
	if err != nil {
		log.Fatalf("cannot parse input: %v", err)
	}
	for _, warning := range warnings {
		fmt.Printf("c warning: %v\n", warning)
	}

	fmt.Printf("c hardness estimate: %v\n", solver.EstimateHardness(formula))
	if *estimatePtr {
		return
	}

	// Initialize engine and solve
	engine := solvers[solverStr](solver.Options{
		MaxDecisions: *maxDecisionsPtr,
		Timeout:      *timeoutPtr,
		Selection:    selections[selection],
	})
	result, err := engine.Solve(formula)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	}

	// Exit codes follow the SAT competition convention: 10 for satisfiable,
	// 20 for unsatisfiable, 0 when the verdict is unknown.
	switch result.Status {
	case solver.Sat:
		fmt.Println("s SATISFIABLE")
		fmt.Println(solver.FormatModel(result.Model))
		os.Exit(10)
	case solver.Unsat:
		fmt.Println("s UNSATISFIABLE")
		os.Exit(20)
	default:
		fmt.Println("s UNKNOWN")
	}
}
