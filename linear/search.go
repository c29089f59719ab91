// File: search.go
// Role: the WGL-style linearizability search: invoke adds to pending, ok
// chooses a legal subset+order of pending to linearize (ending with
// itself), fail drops its invoke, info keeps-or-drops nondeterministically.
// Iterative over an explicit stack (package doc explains why), with a
// bloom-accelerated visited-state table (spec.md §4.5) guarding a slower
// exact map: a bloom negative is certain "not visited" (skip the map
// probe); a bloom positive still checks the exact map, so the filter can
// never introduce an incorrect "already visited" verdict.
//
// An invocation linearized early, as part of some other Ok event's
// lz.consumed (see permute.go), is removed from frame.pending at that
// point; when the cursor later reaches that invocation's own Ok event, it
// must not be stepped through the model a second time. case op.Ok guards
// this by checking frame.pending before re-deriving others/legalizations.
package linear

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/holiman/bloomfilter/v2"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/model"
	"github.com/jepsenhq/chronos/op"
)

type frame struct {
	cursor  int
	state   model.State
	pending *roaring.Bitmap
}

// Search decides whether h (already normalized via NormalizeInfoReads by
// the caller, typically checker.Linearizable) admits a linearization
// consistent with m. It polls ctx at every outer-loop iteration, which keeps
// it within spec.md §5's roughly-a-millisecond cancellation contract.
func Search(ctx context.Context, h history.History, m model.Model) (bool, *Counterexample, error) {
	pairing := history.PairIndex(h)
	events := h.All()

	visited := make(map[string]struct{})
	bloom, bloomErr := bloomfilter.New(1<<20, 0.01)
	useBloom := bloomErr == nil

	stack := []frame{{cursor: 0, state: m.Init(), pending: roaring.New()}}

	var lastFail *Counterexample

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.cursor >= len(events) {
			return true, nil, nil
		}

		key := memoKey(f)
		if alreadyVisited(bloom, useBloom, visited, key) {
			continue
		}
		visited[key] = struct{}{}
		if useBloom {
			bloom.Add(hashKey(key))
		}

		e := events[f.cursor]
		switch e.Type {
		case op.Invoke:
			np := f.pending.Clone()
			np.Add(uint32(e.Index))
			stack = append(stack, frame{f.cursor + 1, f.state, np})

		case op.Fail:
			invIdx, ok := pairing.InvokeOf[e.Index]
			np := f.pending.Clone()
			if ok {
				np.Remove(uint32(invIdx))
			}
			stack = append(stack, frame{f.cursor + 1, f.state, np})

		case op.Info:
			invIdx, ok := pairing.InvokeOf[e.Index]
			stack = append(stack, frame{f.cursor + 1, f.state, f.pending})
			if ok {
				np := f.pending.Clone()
				np.Remove(uint32(invIdx))
				stack = append(stack, frame{f.cursor + 1, f.state, np})
			}

		case op.Ok:
			invIdx, ok := pairing.InvokeOf[e.Index]
			if !ok {
				continue
			}
			if !f.pending.Contains(uint32(invIdx)) {
				// Already linearized early, as one of an earlier Ok
				// event's lz.consumed: stepping the model again here
				// for this same invocation's own completion would
				// apply it twice. Just advance past it.
				stack = append(stack, frame{f.cursor + 1, f.state, f.pending})
				continue
			}
			others := completionIndicesExcept(f.pending, invIdx, pairing)
			results := legalizations(h, m, f.state, others, e.Index)
			if len(results) == 0 {
				lastFail = &Counterexample{Index: e.Index, Pending: bitmapInvokeList(f.pending)}
				continue
			}
			for _, lz := range results {
				np := f.pending.Clone()
				np.Remove(uint32(invIdx))
				for _, consumedCompletion := range lz.consumed {
					if consumedInv, ok := pairing.InvokeOf[consumedCompletion]; ok {
						np.Remove(uint32(consumedInv))
					}
				}
				stack = append(stack, frame{f.cursor + 1, lz.state, np})
			}

		default:
			return false, nil, fmt.Errorf("linear: unexpected operation type %q at index %d", e.Type, e.Index)
		}
	}

	return false, lastFail, nil
}

func completionIndicesExcept(pending *roaring.Bitmap, exclude int, pairing history.Pairing) []int {
	var out []int
	it := pending.Iterator()
	for it.HasNext() {
		invIdx := int(it.Next())
		if invIdx == exclude {
			continue
		}
		if c, ok := pairing.CompletionOf[invIdx]; ok && c >= 0 {
			out = append(out, c)
		}
	}
	return out
}

func bitmapInvokeList(pending *roaring.Bitmap) []int {
	out := make([]int, 0, pending.GetCardinality())
	it := pending.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

func memoKey(f frame) string {
	return fmt.Sprintf("%d|%s|%s", f.cursor, f.state.Key(), f.pending.String())
}

func hashKey(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

func alreadyVisited(bloom *bloomfilter.Filter, useBloom bool, visited map[string]struct{}, key string) bool {
	if useBloom && !bloom.Contains(hashKey(key)) {
		return false
	}
	_, ok := visited[key]
	return ok
}
