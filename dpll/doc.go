/*
Package dpll decides propositional satisfiability of CNF formulas with the
Davis-Putnam-Logemann-Loveland procedure, either sequentially or by sharing
the search among one worker per logical CPU.

Its input can be either a DIMACS CNF stream (io.Reader) or a CNF instance
built in memory. In both cases the solver indicates whether the formula is
satisfiable and, when it is, provides a model: a total set of bindings for
the variables that makes every clause true.

Describing a problem

1. parse a DIMACS stream. If the io.Reader produces the following content:

    p cnf 3 2
    -1 2 3 0
    2 -3 0

the programmer can create the instance by doing:

    cnf, err := dpll.ParseCNF(f)

Variable names are the tokens themselves, so symbolic identifiers work too:

    p cnf 2 2
    rain -umbrella 0
    umbrella 0

2. create the equivalent list of list of literals:

    cnf := dpll.ParseSlice([][]int{{-1, 2, 3}, {2, -3}})

3. build clauses programmatically with NewLiteral, NewClause and NewCNF,
the way the reduction front ends do.

Solving

    res := dpll.Solve(cnf)         // sequential
    res := dpll.SolveParallel(cnf) // one worker per logical CPU

On Sat, res.Model carries the bindings:

    if res.Status == dpll.Sat {
        fmt.Print(res) // one "name: true|false" line per variable
    }

The two entry points agree on the Sat/Unsat tag for every input; the models
they return may differ. The sequential engine is deterministic: two runs on
the same input return the same model.

The solver applies unit propagation, pure-literal elimination and
first-unassigned branching, in that order, over an explicit stack of
instances. There is no clause learning and no watched-literal scheme: the
package favors a small, predictable core over raw speed on industrial
instances.
*/
package dpll
