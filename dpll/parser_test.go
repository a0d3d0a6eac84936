package dpll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCNF(t *testing.T) {
	cnf := mustParse(t, "c a comment\np cnf 3 2\n-1 2 3 0\n2 -3 0\n")
	require.Len(t, cnf.Clauses, 2)
	assert.Equal(t, "-1 2 3 0", cnf.Clauses[0].CNF())
	assert.Equal(t, "2 -3 0", cnf.Clauses[1].CNF())
	assert.Equal(t, []string{"1", "2", "3"}, cnf.Names)
}

func TestParseCNFClauseAcrossLines(t *testing.T) {
	cnf := mustParse(t, "p cnf 3 1\n1 2\n3 0\n")
	require.Len(t, cnf.Clauses, 1)
	assert.Equal(t, 3, cnf.Clauses[0].Len())
}

func TestParseCNFSeveralClausesPerLine(t *testing.T) {
	cnf := mustParse(t, "p cnf 2 2\n1 0 -2 0\n")
	require.Len(t, cnf.Clauses, 2)
}

func TestParseCNFSymbolicNames(t *testing.T) {
	cnf := mustParse(t, "p cnf 2 2\nrain -umbrella 0\numbrella 0\n")
	assert.Equal(t, []string{"rain", "umbrella"}, cnf.Names)
	assert.False(t, cnf.Clauses[0].Lits[1].Positive)
	assert.Equal(t, "umbrella", cnf.Clauses[0].Lits[1].Name)
}

func TestParseCNFTrailingWhitespace(t *testing.T) {
	_, err := ParseCNF(strings.NewReader("p cnf 1 1\n1 0\n   \n\n"))
	assert.NoError(t, err)
}

func TestParseCNFErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no header", "1 2 0\n"},
		{"bad header keyword", "p wcnf 2 1\n1 2 0\n"},
		{"truncated header", "p cnf 2\n1 2 0\n"},
		{"nbvars not an int", "p cnf x 1\n1 0\n"},
		{"nbclauses not an int", "p cnf 1 x\n1 0\n"},
		{"duplicate header", "p cnf 1 1\np cnf 1 1\n1 0\n"},
		{"unfinished clause at EOF", "p cnf 2 1\n1 2\n"},
		{"fewer clauses than declared", "p cnf 2 2\n1 2 0\n"},
		{"dangling negation", "p cnf 1 1\n- 0\n"},
		{"negated zero", "p cnf 1 1\n-0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCNF(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseSlice(t *testing.T) {
	cnf := ParseSlice([][]int{{-1, 2, 3}, {2, -3}})
	require.Len(t, cnf.Clauses, 2)
	assert.Equal(t, "-1 2 3 0", cnf.Clauses[0].CNF())
	res := Solve(cnf)
	assert.Equal(t, Sat, res.Status)
}

func TestParseSliceUnsat(t *testing.T) {
	cnf := ParseSlice([][]int{{1, 2, 3}, {-1}, {-2}, {-3}})
	res := Solve(cnf)
	assert.Equal(t, Unsat, res.Status)
}
