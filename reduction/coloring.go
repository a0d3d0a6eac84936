package reduction

import (
	"fmt"
	"strings"

	"github.com/davlem/parsat/dpll"
)

const nbColors = 3

// Coloring encodes 3-colorability of g as a CNF. The variable v<u>_c<j>
// states that vertex u has color j. Every vertex gets exactly one color and
// no edge joins two vertices of the same color.
func Coloring(g *Graph) *dpll.CNF {
	var clauses []*dpll.Clause
	for u := 1; u <= g.N; u++ {
		// At least one color per vertex.
		lits := make([]*dpll.Literal, nbColors)
		for j := 1; j <= nbColors; j++ {
			lits[j-1] = dpll.NewLiteral(colorVar(u, j), true)
		}
		clauses = append(clauses, dpll.NewClause(lits))
		// At most one color per vertex.
		for j := 1; j <= nbColors; j++ {
			for j2 := j + 1; j2 <= nbColors; j2++ {
				clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
					dpll.NewLiteral(colorVar(u, j), false),
					dpll.NewLiteral(colorVar(u, j2), false),
				}))
			}
		}
	}
	// Neighbors disagree on every color.
	for _, e := range g.Edges {
		for j := 1; j <= nbColors; j++ {
			clauses = append(clauses, dpll.NewClause([]*dpll.Literal{
				dpll.NewLiteral(colorVar(e[0], j), false),
				dpll.NewLiteral(colorVar(e[1], j), false),
			}))
		}
	}
	return dpll.NewCNF(clauses)
}

// ColoringOf extracts the color of every vertex from a model of the
// Coloring encoding.
func ColoringOf(g *Graph, model map[string]bool) map[int]int {
	colors := make(map[int]int, g.N)
	for u := 1; u <= g.N; u++ {
		for j := 1; j <= nbColors; j++ {
			if model[colorVar(u, j)] {
				colors[u] = j
				break
			}
		}
	}
	return colors
}

// InterpretColoring renders a solver result as problem-specific text.
func InterpretColoring(g *Graph, res dpll.Result) string {
	if res.Status != dpll.Sat {
		return "Not 3-colorable."
	}
	colors := ColoringOf(g, res.Model.Model())
	parts := make([]string, 0, g.N)
	for u := 1; u <= g.N; u++ {
		parts = append(parts, fmt.Sprintf("%d: color %d", u, colors[u]))
	}
	return strings.Join(parts, "\n")
}

func colorVar(u, j int) string {
	return fmt.Sprintf("v%d_c%d", u, j)
}
