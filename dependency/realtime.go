// File: realtime.go
// Role: realtime-order graph construction, spec.md §4.3.4, implemented with
// the documented frontier-set optimization: rather than linking every
// completed operation to every later invocation (O(n²)), we keep one
// frontier entry per process (its most recent completion) and link each
// invocation only from the current frontier entries, since an older
// completion of the same process
// is already transitively reachable through its process's later
// completions. Grounded on the teacher's adjacency-map accumulation style
// in core/adjacency_list.go, generalized from a static edge list to a
// streaming frontier.
package dependency

import (
	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// RealtimeOrderGraph adds A ->{realtime} B for operation pairs where A's
// completion index precedes B's invocation index, using one frontier entry
// per process so the total edge count is O(n·w) for typical concurrency w
// rather than O(n²).
func RealtimeOrderGraph(h history.History) *dgraph.Graph {
	g := dgraph.New()
	frontier := make(map[op.Process]int)

	for _, o := range h.All() {
		switch {
		case o.Type == op.Invoke:
			for _, c := range frontier {
				if c < o.Index {
					g.Link(c, o.Index, dgraph.RelRealtime)
				}
			}
		case o.Type.IsCompletion():
			frontier[o.Process] = o.Index
		}
	}
	return g
}
