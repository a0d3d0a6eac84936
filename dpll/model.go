package dpll

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SortNames orders variable names for output: names that are entirely
// digits compare numerically, everything else lexicographically.
func SortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return nameLess(names[i], names[j])
	})
}

func nameLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// String renders the result the way the command line prints it: one
// "name: true|false" line per variable of the model in stable name order,
// or the fixed string "Unsatisfiable." when no model exists.
func (r Result) String() string {
	if r.Status != Sat {
		return "Unsatisfiable."
	}
	names := make([]string, len(r.Model.Names))
	copy(names, r.Model.Names)
	SortNames(names)
	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "%s: %t\n", name, r.Model.Value(name))
	}
	return sb.String()
}
