package dpll

// The three reduction rules of the DPLL procedure. All of them are pure
// queries: they inspect the CNF and report what to assign next, the engine
// performs the assignment.

// unitLiteral returns a literal that is the unique unassigned literal of
// some currently-unsatisfied clause, or nil. Ties are broken by clause
// order, then intra-clause order.
func unitLiteral(cnf *CNF) *Literal {
	for _, c := range cnf.Clauses {
		if l := c.UnitLiteral(); l != nil {
			return l
		}
	}
	return nil
}

// pureLiteral returns an occurrence of an unassigned variable that appears
// with exactly one polarity across the currently-unsatisfied clauses, or
// nil. The declared polarity of every occurrence in an unsatisfied clause is
// counted, regardless of assignment state. Ties are broken by the index
// order of Names.
func pureLiteral(cnf *CNF) *Literal {
	live := make(map[*Literal]bool)
	for _, c := range cnf.Clauses {
		if c.IsSatisfied() {
			continue
		}
		for _, l := range c.Lits {
			live[l] = true
		}
	}
	for _, name := range cnf.Names {
		if cnf.Assigned(name) {
			continue
		}
		var first *Literal
		var pos, neg bool
		for _, l := range cnf.Index[name] {
			if !live[l] {
				continue
			}
			if l.Positive {
				pos = true
			} else {
				neg = true
			}
			if first == nil {
				first = l
			}
		}
		if first != nil && pos != neg {
			return first
		}
	}
	return nil
}

// firstUnassigned returns the name of the first unassigned variable in
// index order, or "".
func firstUnassigned(cnf *CNF) string {
	for _, name := range cnf.Names {
		if !cnf.Assigned(name) {
			return name
		}
	}
	return ""
}
