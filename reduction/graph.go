// Package reduction encodes graph decision problems as CNF instances for
// the dpll package and interprets the models it returns. The reductions are
// pure, offline clause generators: they hand a CNF to the solver and never
// look at the graph again until a model comes back.
package reduction

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Graph is an undirected graph over vertices 1..N.
type Graph struct {
	N     int
	Edges [][2]int
}

// NewGraph returns a graph with n vertices and no edges.
func NewGraph(n int) *Graph {
	return &Graph{N: n}
}

// AddEdge adds the undirected edge {u, v}.
func (g *Graph) AddEdge(u, v int) {
	g.Edges = append(g.Edges, [2]int{u, v})
}

// Adjacent reports whether u and v are connected by an edge.
func (g *Graph) Adjacent(u, v int) bool {
	for _, e := range g.Edges {
		if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
			return true
		}
	}
	return false
}

// ParseGraph parses a DIMACS graph stream: 'c' comment lines, one header
// "p edge <nbvertices> <nbedges>", then one "e <u> <v>" line per edge.
func ParseGraph(f io.Reader) (*Graph, error) {
	var g *Graph
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if g != nil {
				return nil, errors.Errorf("duplicate header %q", line)
			}
			if len(fields) < 4 || fields[1] != "edge" {
				return nil, errors.Errorf("invalid syntax %q in header", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "nbvertices not an int: %q", fields[2])
			}
			g = NewGraph(n)
		case "e":
			if g == nil {
				return nil, errors.Errorf("edge %q found before header", line)
			}
			if len(fields) != 3 {
				return nil, errors.Errorf("invalid edge line %q", line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid vertex %q", fields[1])
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid vertex %q", fields[2])
			}
			if u < 1 || u > g.N || v < 1 || v > g.N {
				return nil, errors.Errorf("vertex out of range in %q", line)
			}
			g.AddEdge(u, v)
		default:
			return nil, errors.Errorf("unexpected line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read input")
	}
	if g == nil {
		return nil, errors.New("no header found")
	}
	return g, nil
}
