package dpll

import (
	"fmt"
	"strings"
)

// A CNF is a conjunction of clauses together with an index from variable
// name to every literal occurrence of that name. The index makes assigning
// a variable O(#occurrences) and keeps the per-occurrence assignment state
// of equal names synchronized.
//
// Names records the variables in first-occurrence order. Go maps iterate in
// random order, so every "index order" rule of the solver walks Names
// instead; this is what makes two runs on the same input bit-identical.
type CNF struct {
	Clauses []*Clause
	Index   map[string][]*Literal
	Names   []string
}

// NewCNF returns a CNF made of the given clauses and builds its index.
func NewCNF(clauses []*Clause) *CNF {
	cnf := &CNF{
		Clauses: clauses,
		Index:   make(map[string][]*Literal),
	}
	for _, c := range clauses {
		for _, l := range c.Lits {
			occs, seen := cnf.Index[l.Name]
			if !seen {
				cnf.Names = append(cnf.Names, l.Name)
			}
			cnf.Index[l.Name] = append(occs, l)
		}
	}
	return cnf
}

// Clone returns a deep copy of the CNF: clauses and literal states are
// value-equal to the source but reference-independent. The index is rebuilt
// from the cloned clauses. O(total literals).
func (cnf *CNF) Clone() *CNF {
	clauses := make([]*Clause, len(cnf.Clauses))
	for i, c := range cnf.Clauses {
		lits := make([]*Literal, len(c.Lits))
		for j, l := range c.Lits {
			cp := *l
			lits[j] = &cp
		}
		clauses[i] = NewClause(lits)
	}
	return NewCNF(clauses)
}

// Assign binds the named variable to the given value in every occurrence.
// Idempotent on repeated assignment with the same value. Unknown names are
// a no-op.
func (cnf *CNF) Assign(name string, value bool) {
	for _, l := range cnf.Index[name] {
		l.Assigned = true
		l.Value = value
	}
}

// Unassign removes the binding of the named variable; no-op if not assigned.
func (cnf *CNF) Unassign(name string) {
	for _, l := range cnf.Index[name] {
		l.Assigned = false
		l.Value = false
	}
}

// Assigned reports whether the named variable is currently bound.
func (cnf *CNF) Assigned(name string) bool {
	occs := cnf.Index[name]
	return len(occs) > 0 && occs[0].Assigned
}

// Value returns the binding of the named variable. Meaningful only when
// Assigned(name) is true.
func (cnf *CNF) Value(name string) bool {
	occs := cnf.Index[name]
	return len(occs) > 0 && occs[0].Value
}

// Status classifies the CNF under its current partial assignment: Sat if
// every clause is satisfied, Unsat if some clause is falsified, Indet
// otherwise.
func (cnf *CNF) Status() Status {
	sat := true
	for _, c := range cnf.Clauses {
		if c.IsFalsified() {
			return Unsat
		}
		if sat && !c.IsSatisfied() {
			sat = false
		}
	}
	if sat {
		return Sat
	}
	return Indet
}

// Model returns the current bindings as a map. Unassigned variables are
// omitted.
func (cnf *CNF) Model() map[string]bool {
	m := make(map[string]bool, len(cnf.Names))
	for _, name := range cnf.Names {
		if cnf.Assigned(name) {
			m[name] = cnf.Value(name)
		}
	}
	return m
}

// completeModel binds every still-unassigned variable to false, so that a
// returned model is total over the variables of the input.
func (cnf *CNF) completeModel() {
	for _, name := range cnf.Names {
		if !cnf.Assigned(name) {
			cnf.Assign(name, false)
		}
	}
}

// CNF returns a DIMACS CNF representation of the problem.
func (cnf *CNF) CNF() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", len(cnf.Names), len(cnf.Clauses))
	for _, c := range cnf.Clauses {
		sb.WriteString(c.CNF())
		sb.WriteByte('\n')
	}
	return sb.String()
}
