package dpll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNames(t *testing.T) {
	names := []string{"10", "x2", "2", "1", "x10"}
	SortNames(names)
	// All-digit names compare numerically, the rest lexicographically.
	assert.Equal(t, []string{"1", "2", "10", "x10", "x2"}, names)
}

func TestResultStringSat(t *testing.T) {
	res := Solve(mustParse(t, "p cnf 1 1\n1 0\n"))
	require.Equal(t, Sat, res.Status)
	assert.Equal(t, "1: true\n", res.String())
}

func TestResultStringOrder(t *testing.T) {
	res := Solve(mustParse(t, "p cnf 10 2\n10 0\n2 0\n"))
	require.Equal(t, Sat, res.Status)
	assert.Equal(t, "2: true\n10: true\n", res.String())
}

func TestResultStringUnsat(t *testing.T) {
	res := Solve(mustParse(t, "p cnf 1 2\n1 0\n-1 0\n"))
	require.Equal(t, Unsat, res.Status)
	assert.Equal(t, "Unsatisfiable.", res.String())
}
