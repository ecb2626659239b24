package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a formula in the DIMACS CNF format: 'c' comment lines, a
// single "p cnf <vars> <clauses>" header, then whitespace-separated signed
// literals forming 0-terminated clauses (clauses may span lines). A lone '%'
// line ends the input early; some benchmark suites append a trailer after it.
//
// A mismatch between the declared and actual clause count is correctable:
// the actual count wins and a warning is returned. Every other deviation is
// a FormatError.
func Parse(r io.Reader) (Formula, []string, error) {
	var (
		numVars         int
		declaredClauses int
		headerSeen      bool
		clauses         [][]int
		clause          []int
		line            int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == 'c' {
			continue
		}
		if text == "%" {
			break
		}

		if text[0] == 'p' {
			if headerSeen {
				return Formula{}, nil, FormatError{Line: line, Msg: "duplicate problem header"}
			}
			fields := strings.Fields(text)
			if len(fields) != 4 || fields[1] != "cnf" {
				return Formula{}, nil, FormatError{Line: line, Msg: fmt.Sprintf("malformed problem header %q", text)}
			}
			var err error
			if numVars, err = strconv.Atoi(fields[2]); err != nil || numVars < 0 {
				return Formula{}, nil, FormatError{Line: line, Msg: fmt.Sprintf("invalid variable count %q", fields[2])}
			}
			if declaredClauses, err = strconv.Atoi(fields[3]); err != nil || declaredClauses < 0 {
				return Formula{}, nil, FormatError{Line: line, Msg: fmt.Sprintf("invalid clause count %q", fields[3])}
			}
			headerSeen = true
			continue
		}

		if !headerSeen {
			return Formula{}, nil, FormatError{Line: line, Msg: "clause before problem header"}
		}
		for _, token := range strings.Fields(text) {
			literal, err := strconv.Atoi(token)
			if err != nil {
				return Formula{}, nil, FormatError{Line: line, Msg: fmt.Sprintf("invalid literal %q", token)}
			}
			if literal == 0 {
				if len(clause) == 0 {
					return Formula{}, nil, MalformedClauseError{Clause: len(clauses)}
				}
				clauses = append(clauses, clause)
				clause = nil
				continue
			}
			if literal > numVars || -literal > numVars {
				return Formula{}, nil, FormatError{Line: line, Msg: fmt.Sprintf("literal %d exceeds declared %d variables", literal, numVars)}
			}
			clause = append(clause, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return Formula{}, nil, fmt.Errorf("cannot read input: %v", err)
	}

	if !headerSeen {
		return Formula{}, nil, FormatError{Msg: "missing problem header"}
	}
	if len(clause) != 0 {
		return Formula{}, nil, FormatError{Line: line, Msg: "unterminated clause at end of input"}
	}

	var warnings []string
	if len(clauses) != declaredClauses {
		warnings = append(warnings, fmt.Sprintf("header declares %d clauses but input contains %d; using the actual count", declaredClauses, len(clauses)))
	}
	return Formula{NumVars: numVars, Clauses: clauses}, warnings, nil
}
