// File: history.go
// Role: History type, Index constructor, and PairIndex.
// Determinism:
//   - Index assigns op.Operation.Index = 0..n-1 in input order; the
//     resulting History never reorders operations.
// Concurrency:
//   - History is immutable after Index returns; safe to read concurrently
//     from any number of goroutines.

package history

import (
	"fmt"

	"github.com/jepsenhq/chronos/op"
)

// History is an immutable, dense, totally-ordered sequence of operations.
type History struct {
	ops []op.Operation
}

// Index assigns a dense Index (0..n-1) to each operation in input order and
// returns the resulting immutable History. The input slice is not mutated;
// Index returns a defensive copy with Index fields overwritten.
func Index(ops []op.Operation) History {
	out := make([]op.Operation, len(ops))
	for i, o := range ops {
		o.Index = i
		out[i] = o
	}
	return History{ops: out}
}

// Len returns the number of operations in h.
func (h History) Len() int { return len(h.ops) }

// At returns the operation at the given index. It panics if idx is out of
// range, since indices are only ever produced by Index or by another
// History method, never supplied raw by a caller.
func (h History) At(idx int) op.Operation { return h.ops[idx] }

// All returns the operations in index order. The returned slice is owned by
// the caller but aliases the same Operation values; Operation is immutable
// by convention so this is safe to share.
func (h History) All() []op.Operation {
	out := make([]op.Operation, len(h.ops))
	copy(out, h.ops)
	return out
}

// Pairing holds the invoke/completion correspondence computed by PairIndex.
type Pairing struct {
	// InvokeOf maps a completion's Index to its invoke's Index.
	InvokeOf map[int]int
	// CompletionOf maps an invoke's Index to its completion's Index, or -1
	// if the invoke has no recorded completion within the history.
	CompletionOf map[int]int
}

// PairIndex pairs every invoke with its completion by process: within a
// single process, operations alternate invoke/completion (processes are
// sequential, spec.md §3), so the next operation by the same process after
// an invoke is that invoke's completion.
func PairIndex(h History) Pairing {
	p := Pairing{
		InvokeOf:     make(map[int]int),
		CompletionOf: make(map[int]int),
	}
	pending := make(map[op.Process]int) // process -> index of its open invoke

	for _, o := range h.ops {
		if o.Type == op.Invoke {
			pending[o.Process] = o.Index
			p.CompletionOf[o.Index] = -1
			continue
		}
		if invIdx, ok := pending[o.Process]; ok {
			p.InvokeOf[o.Index] = invIdx
			p.CompletionOf[invIdx] = o.Index
			delete(pending, o.Process)
		}
	}
	return p
}

// AssertTypeSanity checks the structural invariants of spec.md §3: every
// process is sequential (no two concurrent ops by the same process), every
// completion follows its invoke in index order, and no completion is
// dangling (lacks a matching invoke). It returns the first violation found,
// or nil.
func AssertTypeSanity(h History) error {
	open := make(map[op.Process]int) // process -> invoke index currently open

	for _, o := range h.ops {
		switch o.Type {
		case op.Invoke:
			if prev, busy := open[o.Process]; busy {
				return fmt.Errorf("history: process %s has concurrent invokes at %d and %d", o.Process, prev, o.Index)
			}
			open[o.Process] = o.Index
		case op.Ok, op.Fail, op.Info:
			invIdx, busy := open[o.Process]
			if !busy {
				return fmt.Errorf("history: dangling completion at %d for process %s", o.Index, o.Process)
			}
			if invIdx >= o.Index {
				return fmt.Errorf("history: completion %d does not follow its invoke %d", o.Index, invIdx)
			}
			delete(open, o.Process)
		default:
			return fmt.Errorf("history: op %d: %w", o.Index, op.ErrUnknownType)
		}
	}
	return nil
}
