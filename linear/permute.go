// File: permute.go
// Role: bounded-depth permutation search over the (small) set of pending
// invocations other than the one completing right now, grounded on
// dfs/cycle.go's recursive back-edge search — recursion here is safe
// because depth is bounded by concurrency (typically single digits), not
// by history length, unlike the top-level search in search.go.
package linear

import (
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/model"
	"github.com/jepsenhq/chronos/op"
)

// legalization is one surviving branch of legalizations: the resulting
// state, and the completion indices of others actually consumed along the
// way (everything in others not listed remains pending).
type legalization struct {
	state    model.State
	consumed []int
}

// legalizations returns every model.State reachable by choosing some subset
// of others (in some order) to linearize immediately before forced, ending
// with forced's completion micro-op. Every distinct subset-and-order is
// tried; a subset that linearizes none of others (forced alone) is always
// among the candidates, since spec.md §4.5 allows an empty choice. An order
// is discarded as soon as any step returns an error.
func legalizations(h history.History, m model.Model, state model.State, others []int, forced int) []legalization {
	forcedOp, ok := completionMicroOp(h, forced)
	if !ok {
		return nil
	}

	var out []legalization
	var rec func(remaining []int, consumed []int, cur model.State)
	rec = func(remaining []int, consumed []int, cur model.State) {
		// Stop here: linearize forced now, leaving the rest of remaining
		// still pending for a later completion to pick up.
		if next, err := m.Step(cur, forcedOp); err == nil {
			out = append(out, legalization{state: next, consumed: append([]int(nil), consumed...)})
		}
		// Or: pull one more of remaining in before forced.
		for i, idx := range remaining {
			mo, ok := completionMicroOp(h, idx)
			if !ok {
				continue
			}
			next, err := m.Step(cur, mo)
			if err != nil {
				continue
			}
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			rec(rest, append(consumed, idx), next)
		}
	}
	rec(others, nil, state)
	return out
}

func completionMicroOp(h history.History, invokeIdx int) (op.MicroOp, bool) {
	// The invoke's own micro-op carries enough shape (Kind, Key, Arg/CASOld/
	// CASNew) for a write or cas; for a read, the *completion*'s micro-op
	// carries the resolved value, so callers needing a read's outcome must
	// look up its completion via history.Pairing themselves. legalizations
	// always receives completion indices already (see search.go), so this
	// just extracts the sole micro-op of that completion's TxnValue.
	//
	// A completion index reached via others here is consumed out of its
	// natural order: once chosen, its invocation is removed from
	// frame.pending (lz.consumed in search.go), and that invocation must
	// never be re-legalized when the cursor later reaches its own Ok
	// event — search.go's case op.Ok enforces that by checking
	// frame.pending.Contains before calling legalizations again.
	txn, ok := h.At(invokeIdx).Value.(op.TxnValue)
	if !ok || len(txn.Ops) != 1 {
		return op.MicroOp{}, false
	}
	return txn.Ops[0], true
}
