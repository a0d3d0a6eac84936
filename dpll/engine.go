package dpll

// forkFn receives the sibling instance created at a branch point. The
// sequential engine pushes siblings onto its own stack; the parallel
// coordinator publishes them to the shared queue instead. Selecting the
// strategy per invocation keeps the engine free of global mode state.
type forkFn func(*CNF)

// Solve runs the DPLL procedure on cnf and returns Unsat, or Sat together
// with a total model. The input instance is mutated during the search; on
// Sat the returned model is either the input itself or one of the clones
// made at branch points.
func Solve(cnf *CNF) Result {
	return search(cnf, nil, nil)
}

// search is the iterative DPLL engine. It maintains an explicit stack of
// instances, each one partial model under exploration; recursion would not
// survive instances with as many decisions as variables.
//
// On each iteration the top instance is classified, then the first
// applicable rule fires, in fixed priority: unit propagation, pure-literal
// elimination, branching. Branching pre-clones the top so that no
// assignment ever needs to be undone in place: the sibling still holds the
// pre-branch state.
//
// When fork is non-nil, branch siblings are handed to it instead of being
// pushed; when stop is non-nil it is polled each iteration and a pending
// cancellation yields an Indet result.
func search(cnf *CNF, fork forkFn, stop func() bool) Result {
	stack := []*CNF{cnf}
	for len(stack) > 0 {
		if stop != nil && stop() {
			return Result{Status: Indet}
		}
		top := stack[len(stack)-1]
		switch top.Status() {
		case Sat:
			top.completeModel()
			return Result{Status: Sat, Model: top}
		case Unsat:
			stack = stack[:len(stack)-1]
			continue
		}
		if lit := unitLiteral(top); lit != nil {
			top.Assign(lit.Name, lit.Positive)
			continue
		}
		if lit := pureLiteral(top); lit != nil {
			top.Assign(lit.Name, lit.Positive)
			continue
		}
		if name := firstUnassigned(top); name != "" {
			sibling := top.Clone()
			top.Assign(name, true)
			sibling.Assign(name, false)
			if fork != nil {
				fork(sibling)
			} else {
				stack = append(stack, sibling)
			}
			continue
		}
		// No rule applies and the instance is still undetermined: give up
		// on this branch.
		stack = stack[:len(stack)-1]
	}
	return Result{Status: Unsat}
}
