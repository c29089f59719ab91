// File: classify.go
// Role: classify a cycle's edge relations into a Kind, spec.md §4.4's
// pattern table.
package anomaly

import "github.com/jepsenhq/chronos/dgraph"

// Classify inspects the relations on each consecutive edge of the closed
// cycle (cycle[len-1] must equal cycle[0]) within g and returns the most
// specific matching Kind.
func Classify(g *dgraph.Graph, cycle []int) Kind {
	var ww, wr, rw int
	hasRealtimeOnly := false

	for i := 0; i+1 < len(cycle); i++ {
		rel := edgeRel(g, cycle[i], cycle[i+1])
		switch {
		case rel.Has(dgraph.RelWW):
			ww++
		case rel.Has(dgraph.RelWR):
			wr++
		case rel.Has(dgraph.RelRW):
			rw++
		case rel.Has(dgraph.RelRealtime) || rel.Has(dgraph.RelProcess) || rel.Has(dgraph.RelPerKey):
			hasRealtimeOnly = true
		}
	}

	switch {
	case rw >= 2:
		return G2
	case rw == 1:
		return GSingle
	case wr >= 1:
		return G1c
	case ww > 0:
		return G0
	case hasRealtimeOnly:
		return RealtimeViolation
	default:
		return Unrecognized
	}
}

func edgeRel(g *dgraph.Graph, a, b int) dgraph.Rel {
	for _, e := range g.Out(a) {
		if e.Vertex == b {
			return e.Rel
		}
	}
	return 0
}
