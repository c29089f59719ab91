// File: filters.go
// Role: read-only views over a History: Oks, Fails, Infos, ClientOps,
// ByProcess, plus the ConcurrentWith helper for testing whether two
// invocations overlap in time.
package history

import "github.com/jepsenhq/chronos/op"

func filter(h History, keep func(op.Operation) bool) []op.Operation {
	out := make([]op.Operation, 0, len(h.ops))
	for _, o := range h.ops {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// Oks returns every op.Ok operation, in index order.
func (h History) Oks() []op.Operation {
	return filter(h, func(o op.Operation) bool { return o.Type == op.Ok })
}

// Fails returns every op.Fail operation, in index order.
func (h History) Fails() []op.Operation {
	return filter(h, func(o op.Operation) bool { return o.Type == op.Fail })
}

// Infos returns every op.Info operation, in index order.
func (h History) Infos() []op.Operation {
	return filter(h, func(o op.Operation) bool { return o.Type == op.Info })
}

// ClientOps returns every operation not issued by the nemesis, in index
// order.
func (h History) ClientOps() []op.Operation {
	return filter(h, func(o op.Operation) bool { return !o.Process.IsNemesis() })
}

// ByProcess returns every operation issued by p, in index order.
func (h History) ByProcess(p op.Process) []op.Operation {
	return filter(h, func(o op.Operation) bool { return o.Process == p })
}

// Invokes returns every op.Invoke operation, in index order.
func (h History) Invokes() []op.Operation {
	return filter(h, func(o op.Operation) bool { return o.Type == op.Invoke })
}

// ConcurrentWith reports whether the invocation-to-completion interval of a
// overlaps that of b: a's invoke precedes b's completion and b's invoke
// precedes a's completion. Both operations must be invokes; completions are
// looked up via pairing.
func ConcurrentWith(pairing Pairing, a, b op.Operation) bool {
	aEnd, aOK := pairing.CompletionOf[a.Index]
	bEnd, bOK := pairing.CompletionOf[b.Index]
	if !aOK || !bOK || aEnd < 0 || bEnd < 0 {
		// An operation with no recorded completion (a trailing invoke, or an
		// info that never resolved) is conservatively treated as extending
		// to the end of the history, i.e. concurrent with everything after
		// its invoke.
		if aEnd < 0 {
			aEnd = int(^uint(0) >> 1)
		}
		if bEnd < 0 {
			bEnd = int(^uint(0) >> 1)
		}
	}
	return a.Index < bEnd && b.Index < aEnd
}
