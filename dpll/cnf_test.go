package dpll

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *CNF {
	t.Helper()
	cnf, err := ParseCNF(strings.NewReader(input))
	require.NoError(t, err)
	return cnf
}

const threeVars = "p cnf 3 2\n-1 2 3 0\n2 -3 0\n"

func TestIndexInvariant(t *testing.T) {
	cnf := mustParse(t, threeVars)
	assert.Equal(t, []string{"1", "2", "3"}, cnf.Names)
	assert.Len(t, cnf.Index, 3)

	// The concatenation of the index values equals the multiset of literal
	// occurrences across clauses.
	total := 0
	for _, occs := range cnf.Index {
		total += len(occs)
	}
	lits := 0
	for _, c := range cnf.Clauses {
		lits += c.Len()
	}
	assert.Equal(t, lits, total)
	assert.Len(t, cnf.Index["2"], 2)
	assert.Len(t, cnf.Index["3"], 2)
}

func TestAssignSynchronizesOccurrences(t *testing.T) {
	cnf := mustParse(t, threeVars)
	cnf.Assign("3", true)
	for _, l := range cnf.Index["3"] {
		assert.True(t, l.Assigned)
		assert.True(t, l.Value)
	}
	for _, l := range cnf.Index["2"] {
		assert.False(t, l.Assigned)
	}
	cnf.Unassign("3")
	for _, l := range cnf.Index["3"] {
		assert.False(t, l.Assigned)
	}
}

func TestAssignIdempotent(t *testing.T) {
	cnf := mustParse(t, threeVars)
	cnf.Assign("2", true)
	snapshot := cnf.Clone()
	cnf.Assign("2", true)
	assert.Empty(t, cmp.Diff(snapshot.Clauses, cnf.Clauses))
	assert.Empty(t, cmp.Diff(snapshot.Model(), cnf.Model()))
}

func TestAssignUnknownNameIsNoop(t *testing.T) {
	cnf := mustParse(t, threeVars)
	cnf.Assign("42", true)
	assert.Empty(t, cnf.Model())
	cnf.Unassign("42")
	assert.Len(t, cnf.Names, 3)
}

func TestCloneIndependence(t *testing.T) {
	cnf := mustParse(t, threeVars)
	cnf.Assign("1", true)
	clone := cnf.Clone()

	require.Empty(t, cmp.Diff(cnf.Model(), clone.Model()))
	require.Equal(t, cnf.Names, clone.Names)

	// Mutating the clone leaves the source unchanged, and vice versa.
	clone.Assign("2", true)
	assert.False(t, cnf.Assigned("2"))
	cnf.Assign("3", false)
	assert.False(t, clone.Assigned("3"))

	// The clone's index points into its own clauses, not the source's.
	for name, occs := range clone.Index {
		for i, l := range occs {
			assert.NotSame(t, cnf.Index[name][i], l)
		}
	}
}

func TestCNFStatus(t *testing.T) {
	cnf := mustParse(t, threeVars)
	assert.Equal(t, Indet, cnf.Status())
	cnf.Assign("1", false)
	cnf.Assign("2", true)
	assert.Equal(t, Sat, cnf.Status())

	cnf = mustParse(t, threeVars)
	cnf.Assign("1", true)
	cnf.Assign("2", false)
	cnf.Assign("3", false)
	assert.Equal(t, Unsat, cnf.Status())
}
