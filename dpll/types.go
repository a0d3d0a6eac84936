package dpll

// Describes basic types and constants that are used in the solver

// Status is the status of a given problem or clause at a given moment.
type Status byte

const (
	// Indet means the problem is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the problem or clause is satisfied.
	Sat
	// Unsat means the problem or clause is unsatisfied.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Literal is one occurrence of a variable in a clause, together with its
// assignment state. All occurrences of the same name inside a CNF share the
// same state: Assign keeps them synchronized through the name index.
type Literal struct {
	Name     string // Identifier of the variable. Opaque: "7" and "x3" are both fine.
	Positive bool   // Declared polarity of this occurrence.
	Assigned bool
	Value    bool // Value of the variable, meaningful only when Assigned.
}

// NewLiteral returns an unassigned literal for the given name and polarity.
func NewLiteral(name string, positive bool) *Literal {
	return &Literal{Name: name, Positive: positive}
}

// Holds is true iff the literal is assigned and evaluates to true,
// i.e. the variable's value matches the declared polarity.
func (l *Literal) Holds() bool {
	return l.Assigned && l.Value == l.Positive
}

// Falsified is true iff the literal is assigned and evaluates to false.
func (l *Literal) Falsified() bool {
	return l.Assigned && l.Value != l.Positive
}

func (l *Literal) String() string {
	if l.Positive {
		return l.Name
	}
	return "-" + l.Name
}

// A Result is the outcome of a solver run: Unsat, or Sat together with a
// model whose assignment satisfies every clause of the input.
type Result struct {
	Status Status
	Model  *CNF // nil unless Status == Sat
}
