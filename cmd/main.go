package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/limaJavier/cnfsat/pkg/query"
	"github.com/limaJavier/cnfsat/pkg/solver"
)

// Reads a free-form request from stdin and routes it through the query
// facade, the same entry point outside systems use. For the full flag-driven
// interface use cmd/cli instead.
func main() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("cannot read request: %v", err)
	}

	handler := query.NewHandler(solver.NewDPLLSolver(solver.Options{}))
	text := string(input)
	if !handler.CanHandle(text) {
		fmt.Println("Request does not look like a satisfiability problem")
		return
	}

	response := handler.Handle(text)
	for _, warning := range response.Warnings {
		fmt.Printf("Warning: %v\n", warning)
	}
	if !response.OK {
		log.Fatalf("cannot handle request: %v", response.Error)
	}

	fmt.Printf("Status: %v\n", response.Status)
	fmt.Printf("Hardness: %v\n", response.Hardness)
	if len(response.Model) > 0 {
		fmt.Printf("Assignment: %v\n", response.Model)
	}
}
