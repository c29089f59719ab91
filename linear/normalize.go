// File: normalize.go
// Role: NormalizeInfoReads, spec.md §4.5's performance-motivated rule: a
// pure read left Info (client-observed timeout) contributes nothing to the
// search either way (it is never a write another process can depend on),
// so remapping it to Fail lets the search drop it from pending immediately
// instead of branching on keep-vs-abandon at every later Ok. Operates on a
// copy, matching history's immutability convention (history/history.go)
// and the teacher's non-mutating view.go style.
package linear

import (
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// NormalizeInfoReads returns a copy of h with every Info completion of a
// pure read micro-op remapped to Fail.
func NormalizeInfoReads(h history.History) history.History {
	all := h.All()
	out := make([]op.Operation, len(all))
	for i, o := range all {
		out[i] = o
		if o.Type != op.Info {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok || len(txn.Ops) != 1 || txn.Ops[0].Kind != op.MicroRead {
			continue
		}
		out[i].Type = op.Fail
	}
	return history.Index(out)
}
