// File: process.go
// Role: process-order graph construction, spec.md §4.3.3.
package dependency

import (
	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// ProcessOrderGraph links successive completions by the same process with
// relation RelProcess.
func ProcessOrderGraph(h history.History) *dgraph.Graph {
	g := dgraph.New()
	last := make(map[op.Process]int)

	for _, o := range h.All() {
		if !o.Type.IsCompletion() {
			continue
		}
		if prev, ok := last[o.Process]; ok {
			g.Link(prev, o.Index, dgraph.RelProcess)
		}
		last[o.Process] = o.Index
	}
	return g
}
