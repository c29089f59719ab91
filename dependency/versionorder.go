// File: versionorder.go
// Role: per-key version-order construction from the five source
// precedences of spec.md §4.3.2, merged in priority order. Resolution of
// spec.md's Open Question (a) (recorded in SPEC_FULL.md §9): rather than
// aborting the whole analysis at the first cyclic source, we drop only the
// offending source, report it, and keep trying the remaining sources in
// priority order — a strict superset of information recovered from the
// same history.
package dependency

import (
	"math"
	"sort"

	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// nilVertex represents the version order's synthetic "no value yet" node
// (spec.md §4.3.2 item 1). Real observed values are never expected to
// collide with math.MinInt.
const nilVertex = math.MinInt

// CyclicVersionsAnomaly is reported when a version-order source, merged
// with the sources already accepted for a key, would introduce a cycle.
// The source is dropped and the remaining sources are still attempted.
type CyclicVersionsAnomaly struct {
	Key    string
	Source string
}

// IncompatibleOrderAnomaly is reported when two observed lists for the same
// key are not prefix-comparable, so no list-append version order can be
// derived from them.
type IncompatibleOrderAnomaly struct {
	Key string
	A   []int64
	B   []int64
}

// VersionOrders holds, for each key, the accepted version-order graph
// (vertices are observed values, plus nilVertex) and any anomalies found
// while building it.
type VersionOrders struct {
	Graphs    map[string]*dgraph.Graph
	Cyclic    []CyclicVersionsAnomaly
	Incompat  []IncompatibleOrderAnomaly
}

// BuildVersionOrders constructs the per-key version order for every key in
// idx, honoring the optional sources enabled in opts.
func BuildVersionOrders(h history.History, idx map[string]*KeyIndex, opts Options) VersionOrders {
	out := VersionOrders{Graphs: make(map[string]*dgraph.Graph)}

	procOrder := ProcessOrderGraph(h)
	realtimeOrder := RealtimeOrderGraph(h)

	for key, ki := range idx {
		vo := dgraph.New()

		type source struct {
			name  string
			edges [][2]int64
		}
		sources := []source{
			{"initial-state", initialStateEdges(ki)},
		}
		if opts.writesFollowReads {
			sources = append(sources, source{"writes-follow-reads", writesFollowReadsEdges(h, key)})
		}
		if opts.sequentialKeys {
			sources = append(sources, source{"sequential-keys", collapsedOrderEdges(h, key, procOrder)})
		}
		if opts.linearizableKeys {
			sources = append(sources, source{"linearizable-keys", collapsedOrderEdges(h, key, realtimeOrder)})
		}
		sources = append(sources, source{"list-append", listAppendEdges(key, ki, &out)})

		for _, src := range sources {
			trial := cloneVOGraph(vo)
			for _, e := range src.edges {
				// The scratch vo graph's relation bit is never inspected; any
				// non-zero value marks "an edge exists here" for cycle
				// detection via SCC.
				trial.Link(int(e[0]), int(e[1]), dgraph.RelInitial)
			}
			if hasCycle(trial) {
				out.Cyclic = append(out.Cyclic, CyclicVersionsAnomaly{Key: key, Source: src.name})
				continue
			}
			vo = trial
		}

		out.Graphs[key] = vo
	}
	return out
}

func cloneVOGraph(g *dgraph.Graph) *dgraph.Graph {
	out := dgraph.New()
	for _, v := range g.Vertices() {
		for _, e := range g.Out(v) {
			out.Link(v, e.Vertex, e.Rel)
		}
	}
	return out
}

func hasCycle(g *dgraph.Graph) bool {
	return len(g.SCC()) > 0
}

func initialStateEdges(ki *KeyIndex) [][2]int64 {
	values := make(map[int64]struct{})
	for v := range ki.Writers {
		values[v] = struct{}{}
	}
	for _, r := range ki.Reads {
		if r.Nil {
			continue
		}
		if r.IsList {
			for _, v := range r.List {
				values[v] = struct{}{}
			}
			continue
		}
		values[r.Scalar] = struct{}{}
	}
	vs := make([]int64, 0, len(values))
	for v := range values {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	edges := make([][2]int64, 0, len(vs))
	for _, v := range vs {
		edges = append(edges, [2]int64{nilVertex, v})
	}
	return edges
}

// writesFollowReadsEdges infers v1 -> v2 within a single ok transaction that
// reads k=v1 then later writes v2 to k.
func writesFollowReadsEdges(h history.History, key string) [][2]int64 {
	var edges [][2]int64
	for _, o := range h.All() {
		if o.Type != op.Ok {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok {
			continue
		}
		var lastRead int64
		haveRead := false
		for _, m := range txn.Ops {
			if m.Key != key {
				continue
			}
			switch m.Kind {
			case op.MicroRead:
				if m.ReadKnown && !m.ReadNil && !m.IsList {
					lastRead = m.ReadScalar
					haveRead = true
				}
			case op.MicroWrite, op.MicroAppend:
				if haveRead {
					edges = append(edges, [2]int64{lastRead, m.Arg})
				}
			case op.MicroCAS:
				if haveRead {
					edges = append(edges, [2]int64{lastRead, m.CASNew})
				}
			}
		}
	}
	return edges
}

// listAppendEdges derives the total order on appended elements of key from
// the prefix relation among observed lists, flagging incomparable pairs.
func listAppendEdges(key string, ki *KeyIndex, out *VersionOrders) [][2]int64 {
	var lists [][]int64
	for _, r := range ki.Reads {
		if r.IsList {
			lists = append(lists, r.List)
		}
	}
	if len(lists) == 0 {
		return nil
	}

	longest := lists[0]
	for _, l := range lists[1:] {
		a, b := longest, l
		if len(b) > len(a) {
			a, b = b, a
		}
		if !isPrefix(b, a) {
			out.Incompat = append(out.Incompat, IncompatibleOrderAnomaly{Key: key, A: longest, B: l})
			continue
		}
		if len(l) > len(longest) {
			longest = l
		}
	}

	edges := make([][2]int64, 0, len(longest))
	for i := 0; i+1 < len(longest); i++ {
		edges = append(edges, [2]int64{longest[i], longest[i+1]})
	}
	return edges
}

func isPrefix(short, long []int64) bool {
	if len(short) > len(long) {
		return false
	}
	for i := range short {
		if short[i] != long[i] {
			return false
		}
	}
	return true
}

// collapsedOrderEdges follows spec.md §4.3.2 item 3/4: collapse order onto
// transactions touching key, then link the final written value of each
// predecessor to the first written value of its successor.
func collapsedOrderEdges(h history.History, key string, order *dgraph.Graph) [][2]int64 {
	touches := make(map[int]bool)
	firstLast := make(map[int][2]int64) // opIndex -> (first, last) written value

	for _, o := range h.All() {
		if o.Type != op.Ok {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok {
			continue
		}
		var first, last int64
		have := false
		for _, m := range txn.Ops {
			if m.Key != key {
				continue
			}
			var v int64
			switch m.Kind {
			case op.MicroWrite, op.MicroAppend:
				v = m.Arg
			case op.MicroCAS:
				v = m.CASNew
			default:
				continue
			}
			if !have {
				first = v
				have = true
			}
			last = v
		}
		if have {
			touches[o.Index] = true
			firstLast[o.Index] = [2]int64{first, last}
		}
	}

	collapsed := order.Collapse(func(v int) bool { return touches[v] })
	var edges [][2]int64
	for a := range touches {
		for _, e := range collapsed.Out(a) {
			b := e.Vertex
			if !touches[b] {
				continue
			}
			edges = append(edges, [2]int64{firstLast[a][1], firstLast[b][0]})
		}
	}
	return edges
}
