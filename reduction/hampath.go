package reduction

import (
	"fmt"
	"strings"

	"github.com/davlem/parsat/dpll"
)

// HamiltonianPath encodes the existence of a Hamiltonian path in g as a
// CNF. The variable p<i>_v<u> states that position i of the path holds
// vertex u. Every position holds exactly one vertex, every vertex appears
// exactly once, and consecutive positions hold adjacent vertices.
func HamiltonianPath(g *Graph) *dpll.CNF {
	var clauses []*dpll.Clause
	n := g.N
	for i := 1; i <= n; i++ {
		// At least one vertex per position.
		lits := make([]*dpll.Literal, n)
		for u := 1; u <= n; u++ {
			lits[u-1] = dpll.NewLiteral(posVar(i, u), true)
		}
		clauses = append(clauses, dpll.NewClause(lits))
		// At most one vertex per position.
		for u := 1; u <= n; u++ {
			for v := u + 1; v <= n; v++ {
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(posVar(i, u), false),
					dpll.NewLiteral(posVar(i, v), false),
				}))
			}
		}
	}
	for u := 1; u <= n; u++ {
		// Every vertex appears somewhere.
		lits := make([]*dpll.Literal, n)
		for i := 1; i <= n; i++ {
			lits[i-1] = dpll.NewLiteral(posVar(i, u), true)
		}
		clauses = append(clauses, dpll.NewClause(lits))
		// No vertex appears twice.
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(posVar(i, u), false),
					dpll.NewLiteral(posVar(j, u), false),
				}))
			}
		}
	}
	// Consecutive positions hold adjacent vertices.
	for i := 1; i < n; i++ {
		for u := 1; u <= n; u++ {
			for v := 1; v <= n; v++ {
				if u == v || g.Adjacent(u, v) {
					continue
				}
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(posVar(i, u), false),
					dpll.NewLiteral(posVar(i+1, v), false),
				}))
			}
		}
	}
	return dpll.NewCNF(clauses)
}

// HamiltonianPathOrder extracts the vertex visiting order from a model of
// the HamiltonianPath encoding.
func HamiltonianPathOrder(g *Graph, model map[string]bool) []int {
	order := make([]int, 0, g.N)
	for i := 1; i <= g.N; i++ {
		for u := 1; u <= g.N; u++ {
			if model[posVar(i, u)] {
				order = append(order, u)
				break
			}
		}
	}
	return order
}

// InterpretHamiltonianPath renders a solver result as problem-specific text.
func InterpretHamiltonianPath(g *Graph, res dpll.Result) string {
	if res.Status != dpll.Sat {
		return "No Hamiltonian path."
	}
	order := HamiltonianPathOrder(g, res.Model.Model())
	parts := make([]string, len(order))
	for i, u := range order {
		parts[i] = fmt.Sprintf("%d", u)
	}
	return "Hamiltonian path: " + strings.Join(parts, " -> ")
}

func posVar(i, u int) string {
	return fmt.Sprintf("p%d_v%d", i, u)
}
