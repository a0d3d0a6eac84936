package reduction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davlem/parsat/dpll"
)

// IndependentSet encodes the question "does g contain an independent set of
// size k?" as a CNF. The variable s<i>_v<u> states that slot i of the set
// holds vertex u. The clauses require every slot to hold a vertex, forbid a
// vertex from filling two slots, and forbid two adjacent vertices from
// being selected.
func IndependentSet(g *Graph, k int) *dpll.CNF {
	var clauses []*dpll.Clause
	// Every slot holds at least one vertex.
	for i := 1; i <= k; i++ {
		lits := make([]*dpll.Literal, 0, g.N)
		for u := 1; u <= g.N; u++ {
			lits = append(lits, dpll.NewLiteral(slotVar(i, u), true))
		}
		clauses = append(clauses, dpll.NewClause(lits))
	}
	// No vertex fills two slots.
	for u := 1; u <= g.N; u++ {
		for i := 1; i <= k; i++ {
			for j := i + 1; j <= k; j++ {
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(slotVar(i, u), false),
					dpll.NewLiteral(slotVar(j, u), false),
				}))
			}
		}
	}
	// No two selected vertices are adjacent, whatever slots hold them.
	for _, e := range g.Edges {
		for i := 1; i <= k; i++ {
			for j := 1; j <= k; j++ {
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(slotVar(i, e[0]), false),
					dpll.NewLiteral(slotVar(j, e[1]), false),
				}))
			}
		}
	}
	return dpll.NewCNF(clauses)
}

// IndependentSetVertices extracts the selected vertices from a model of the
// IndependentSet encoding, in increasing order.
func IndependentSetVertices(g *Graph, k int, model map[string]bool) []int {
	selected := map[int]bool{}
	for i := 1; i <= k; i++ {
		for u := 1; u <= g.N; u++ {
			if model[slotVar(i, u)] {
				selected[u] = true
			}
		}
	}
	vertices := make([]int, 0, len(selected))
	for u := range selected {
		vertices = append(vertices, u)
	}
	sort.Ints(vertices)
	return vertices
}

// InterpretIndependentSet renders a solver result as problem-specific text.
func InterpretIndependentSet(g *Graph, k int, res dpll.Result) string {
	if res.Status != dpll.Sat {
		return fmt.Sprintf("No independent set of size %d.", k)
	}
	vertices := IndependentSetVertices(g, k, res.Model.Model())
	parts := make([]string, len(vertices))
	for i, u := range vertices {
		parts[i] = fmt.Sprintf("%d", u)
	}
	return fmt.Sprintf("Independent set of size %d: {%s}", k, strings.Join(parts, ", "))
}

func slotVar(i, u int) string {
	return fmt.Sprintf("s%d_v%d", i, u)
}
