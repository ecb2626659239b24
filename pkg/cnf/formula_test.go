package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("ValidFormula", func(t *testing.T) {
		formula, err := New(3, [][]int{{1, 2, 3}, {-1, 2}, {-3}})

		assert.Nil(t, err)
		assert.Equal(t, 3, formula.NumVars)
		assert.Equal(t, 3, formula.NumClauses())
	})

	t.Run("TautologyClauseIsAccepted", func(t *testing.T) {
		formula, err := New(2, [][]int{{1, -1}, {2}})

		assert.Nil(t, err)
		assert.Equal(t, 2, formula.NumClauses())
	})

	t.Run("EmptyClauseSet", func(t *testing.T) {
		formula, err := New(0, nil)

		assert.Nil(t, err)
		assert.Equal(t, 0, formula.NumVars)
		assert.Equal(t, 0, formula.NumClauses())
	})

	t.Run("EmptyClauseIsRejected", func(t *testing.T) {
		_, err := New(2, [][]int{{1}, {}})

		assert.ErrorAs(t, err, &MalformedClauseError{})
		assert.Equal(t, MalformedClauseError{Clause: 1}, err)
	})

	t.Run("OutOfRangeLiteralIsRejected", func(t *testing.T) {
		_, err := New(2, [][]int{{1, -3}})

		assert.ErrorAs(t, err, &FormatError{})
	})

	t.Run("ZeroLiteralIsRejected", func(t *testing.T) {
		_, err := New(2, [][]int{{1, 0}})

		assert.ErrorAs(t, err, &FormatError{})
	})

	t.Run("NegativeVariableCountIsRejected", func(t *testing.T) {
		_, err := New(-1, nil)

		assert.ErrorAs(t, err, &FormatError{})
	})
}

func TestToDIMACS(t *testing.T) {
	formula, err := New(2, [][]int{{1, 2}, {-1, 2}})
	assert.Nil(t, err)

	assert.Equal(t, "p cnf 2 2\n1 2 0\n-1 2 0\n", formula.ToDIMACS())
}
