package dpll

import "strings"

// A Clause is a disjunction of literals. Order is preserved: it drives the
// deterministic tie-breaks of the reduction rules. Duplicate literals and
// tautologies are tolerated.
type Clause struct {
	Lits []*Literal
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []*Literal) *Clause {
	return &Clause{Lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.Lits)
}

// IsSatisfied is true iff at least one literal of the clause holds under the
// current partial assignment.
func (c *Clause) IsSatisfied() bool {
	for _, l := range c.Lits {
		if l.Holds() {
			return true
		}
	}
	return false
}

// IsFalsified is true iff every literal of the clause is assigned and none
// of them holds.
func (c *Clause) IsFalsified() bool {
	for _, l := range c.Lits {
		if !l.Assigned || l.Holds() {
			return false
		}
	}
	return true
}

// IsUndetermined is true iff the clause is neither satisfied nor falsified.
func (c *Clause) IsUndetermined() bool {
	return !c.IsSatisfied() && !c.IsFalsified()
}

// UnitLiteral returns the single unassigned literal of c if c is not
// satisfied and contains exactly one, nil otherwise.
func (c *Clause) UnitLiteral() *Literal {
	var unit *Literal
	for _, l := range c.Lits {
		if l.Holds() {
			return nil
		}
		if !l.Assigned {
			if unit != nil {
				return nil
			}
			unit = l
		}
	}
	return unit
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	var sb strings.Builder
	for _, l := range c.Lits {
		sb.WriteString(l.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('0')
	return sb.String()
}

func (c *Clause) String() string {
	return c.CNF()
}
