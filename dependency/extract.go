// File: extract.go
// Role: shared per-key write/read event extraction that wr.go, versionorder.go
// and monotonic.go all build on, grounded on core's adjacency-map-building
// style (one pass over input, accumulating into plain maps) generalized from
// edges to write/read events.
package dependency

import (
	"sort"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// WriteEvent is one write or append of value to key by the transaction at
// OpIndex.
type WriteEvent struct {
	OpIndex int
	Key     string
	Value   int64
}

// ReadEvent is one observation of key's value (or list, for append
// workloads) by the transaction at OpIndex.
type ReadEvent struct {
	OpIndex int
	Key     string
	Scalar  int64
	List    []int64
	IsList  bool
	Nil     bool
}

// KeyIndex indexes every write and read of one key across a history.
type KeyIndex struct {
	// Writers maps a written value to the (sorted) op indices that wrote it,
	// regardless of outcome (ok or fail); anomaly's G1a detection needs the
	// fail-only writers, not just committed ones.
	Writers map[int64][]int
	Reads   []ReadEvent

	// AppendWriters maps an appended value to the sorted indices of
	// committed transactions that appended it to this key. A well-formed
	// list-append workload never appends the same element twice (the whole
	// point of the element is to serve as a unique version-order witness);
	// CheckInvariants flags any value with more than one entry here.
	AppendWriters map[int64][]int
}

// IndexKeys groups write and read micro-ops in h by key: writes from
// committed (ok) and failed transactions alike, reads only from ok
// transactions whose result is known. Only txn-valued operations
// participate; scalar-valued (single-register) operations are linear's
// concern, not dependency's.
func IndexKeys(h history.History) map[string]*KeyIndex {
	idx := make(map[string]*KeyIndex)
	get := func(key string) *KeyIndex {
		ki, ok := idx[key]
		if !ok {
			ki = &KeyIndex{Writers: make(map[int64][]int), AppendWriters: make(map[int64][]int)}
			idx[key] = ki
		}
		return ki
	}

	for _, o := range h.All() {
		if o.Type != op.Ok && o.Type != op.Fail {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok {
			continue
		}
		for _, m := range txn.Ops {
			switch m.Kind {
			case op.MicroWrite, op.MicroAppend:
				ki := get(m.Key)
				ki.Writers[m.Arg] = append(ki.Writers[m.Arg], o.Index)
				if m.Kind == op.MicroAppend && o.Type == op.Ok {
					ki.AppendWriters[m.Arg] = append(ki.AppendWriters[m.Arg], o.Index)
				}
			case op.MicroCAS:
				ki := get(m.Key)
				ki.Writers[m.CASNew] = append(ki.Writers[m.CASNew], o.Index)
			case op.MicroRead:
				if !m.ReadKnown || o.Type != op.Ok {
					continue
				}
				ki := get(m.Key)
				ev := ReadEvent{OpIndex: o.Index, Key: m.Key, IsList: m.IsList, Nil: m.ReadNil}
				if m.IsList {
					ev.List = append([]int64(nil), m.ReadList...)
				} else {
					ev.Scalar = m.ReadScalar
				}
				ki.Reads = append(ki.Reads, ev)
			}
		}
	}

	for _, ki := range idx {
		for v := range ki.Writers {
			sort.Ints(ki.Writers[v])
		}
		for v := range ki.AppendWriters {
			sort.Ints(ki.AppendWriters[v])
		}
		sort.Slice(ki.Reads, func(i, j int) bool { return ki.Reads[i].OpIndex < ki.Reads[j].OpIndex })
	}
	return idx
}

// CommittedWriters returns the sorted op indices among Writers[value] whose
// operation committed (Type==Ok).
func (ki *KeyIndex) CommittedWriters(h history.History, value int64) []int {
	var out []int
	for _, idx := range ki.Writers[value] {
		if h.At(idx).Type == op.Ok {
			out = append(out, idx)
		}
	}
	return out
}
