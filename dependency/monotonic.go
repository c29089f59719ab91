// File: monotonic.go
// Role: monotonic-key graph construction, spec.md §4.3.5, for workloads
// where a key holds an integer counter observed only by reads (no write
// evidence is needed to order two reads of a monotonic value).
package dependency

import "github.com/jepsenhq/chronos/dgraph"

// MonotonicKeyGraph links every read observing a lower value of a
// monotonic per-key counter to every read observing a strictly higher
// value, for each key independently.
func MonotonicKeyGraph(idx map[string]*KeyIndex) *dgraph.Graph {
	g := dgraph.New()
	for _, ki := range idx {
		for _, lo := range ki.Reads {
			if lo.IsList || lo.Nil {
				continue
			}
			for _, hi := range ki.Reads {
				if hi.IsList || hi.Nil {
					continue
				}
				if lo.Scalar < hi.Scalar {
					g.Link(lo.OpIndex, hi.OpIndex, dgraph.RelPerKey)
				}
			}
		}
	}
	return g
}
