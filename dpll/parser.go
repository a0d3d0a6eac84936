package dpll

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCNF parses a DIMACS CNF stream and returns the corresponding
// instance. A line that is "c" alone or starts with "c" followed by a space
// or tab is a comment, so a variable name may itself start with 'c'. The
// header line is
// "p cnf <nbvars> <nbclauses>". Clauses are whitespace-separated literal
// tokens terminated by a literal 0; a leading '-' denotes negative
// polarity. Variable names are the token strings themselves and need not be
// numeric: "x3" and "-x3" are accepted.
func ParseCNF(f io.Reader) (*CNF, error) {
	var (
		clauses   []*Clause
		cur       []*Literal
		nbClauses = -1
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || isComment(line) {
			continue
		}
		if line[0] == 'p' {
			if nbClauses >= 0 {
				return nil, errors.Errorf("duplicate header %q", line)
			}
			var err error
			if _, nbClauses, err = parseHeader(line); err != nil {
				return nil, err
			}
			continue
		}
		if nbClauses < 0 {
			return nil, errors.Errorf("clause %q found before header", line)
		}
		for _, tok := range strings.Fields(line) {
			if tok == "0" {
				clauses = append(clauses, NewClause(cur))
				cur = nil
				continue
			}
			lit, err := parseLit(tok)
			if err != nil {
				return nil, err
			}
			cur = append(cur, lit)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read input")
	}
	if nbClauses < 0 {
		return nil, errors.New("no header found")
	}
	if len(cur) != 0 {
		return nil, errors.New("unfinished clause while EOF found")
	}
	if len(clauses) < nbClauses {
		return nil, errors.Errorf("header declared %d clauses but %d were read", nbClauses, len(clauses))
	}
	return NewCNF(clauses), nil
}

// ParseSlice builds an instance from a slice of slices of CNF literals,
// where the literal -3 stands for the negation of the variable "3".
// The argument is supposed to be a well-formed CNF.
func ParseSlice(cnf [][]int) *CNF {
	clauses := make([]*Clause, len(cnf))
	for i, line := range cnf {
		lits := make([]*Literal, len(line))
		for j, val := range line {
			if val < 0 {
				lits[j] = NewLiteral(strconv.Itoa(-val), false)
			} else {
				lits[j] = NewLiteral(strconv.Itoa(val), true)
			}
		}
		clauses[i] = NewClause(lits)
	}
	return NewCNF(clauses)
}

func isComment(line string) bool {
	return line == "c" || strings.HasPrefix(line, "c ") || strings.HasPrefix(line, "c\t")
}

func parseHeader(line string) (nbVars, nbClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, errors.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbvars not an int: %q", fields[2])
	}
	nbClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbclauses not an int: %q", fields[3])
	}
	return nbVars, nbClauses, nil
}

func parseLit(tok string) (*Literal, error) {
	positive := true
	name := tok
	if strings.HasPrefix(tok, "-") {
		positive = false
		name = tok[1:]
	}
	if name == "" || name == "0" {
		return nil, errors.Errorf("invalid literal %q", tok)
	}
	return NewLiteral(name, positive), nil
}
