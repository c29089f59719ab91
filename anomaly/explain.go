// File: explain.go
// Role: pure-function text rendering of a Witness, spec.md §4.4 "Explainer."
// Report rendering stays separate from search/classification per spec.md
// §9, so nothing here touches a Graph or History — only the Witness data
// already extracted.
package anomaly

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable sentence (or, for a cycle, a chain of
// sentences closing the loop) describing w.
func Explain(w Witness) string {
	switch w.Kind {
	case G1a:
		return fmt.Sprintf("op %d read %s=%d, which was only ever written by the failed transaction at op %d",
			w.OpIndex, w.Key, w.Value, w.Writer)
	case G1b:
		return fmt.Sprintf("op %d read %s=%d, an intermediate value overwritten within its own writing transaction at op %d before that transaction committed",
			w.OpIndex, w.Key, w.Value, w.Writer)
	case Internal:
		return fmt.Sprintf("op %d's transaction disagreed with its own prior observation of %s", w.OpIndex, w.Key)
	case MultipleWriters:
		return fmt.Sprintf("%s=%d was written by more than one committed transaction (ops %d and %d)", w.Key, w.Value, w.Writer, w.Other)
	case CyclicVersions:
		return fmt.Sprintf("version order for %s became cyclic and a source was dropped", w.Key)
	case IncompatibleOrder:
		return fmt.Sprintf("two reads of %s observed lists that are not prefix-comparable", w.Key)
	default:
		return explainCycle(w)
	}
}

func explainCycle(w Witness) string {
	if len(w.Cycle) < 2 {
		return fmt.Sprintf("%s: insufficient witness data", w.Kind)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s cycle: ", w.Kind)
	for i := 0; i+1 < len(w.Cycle); i++ {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "T%d", w.Cycle[i])
	}
	fmt.Fprintf(&b, " -> T%d", w.Cycle[len(w.Cycle)-1])
	return b.String()
}
