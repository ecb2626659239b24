package cnf

import "fmt"

// FormatError reports malformed DIMACS input or an invalid literal. Line is
// 1-based and zero when the error is not tied to a source line.
type FormatError struct {
	Line int
	Msg  string
}

func (err FormatError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("line %d: %s", err.Line, err.Msg)
	}
	return err.Msg
}

// MalformedClauseError reports a clause with no literals, which is rejected
// at construction time. Clause is the 0-based index of the offending clause.
type MalformedClauseError struct {
	Clause int
}

func (err MalformedClauseError) Error() string {
	return fmt.Sprintf("clause %d contains no literals", err.Clause)
}
