// File: g1.go
// Role: the two G1 anomalies detectable without cycle search (G1a aborted
// reads, G1b intermediate reads) and within-transaction internal
// consistency, spec.md §4.4.
package anomaly

import (
	"github.com/jepsenhq/chronos/dependency"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// DetectG1a finds every ok read that observed a value whose only writers
// (across the whole history) are failed transactions.
func DetectG1a(h history.History, idx map[string]*dependency.KeyIndex) []Witness {
	var out []Witness
	for key, ki := range idx {
		for _, r := range ki.Reads {
			for _, v := range observedValues(r) {
				writers := ki.Writers[v]
				if len(writers) == 0 {
					continue
				}
				if anyCommitted(h, writers) {
					continue
				}
				out = append(out, Witness{
					Kind: G1a, Key: key, Value: v,
					OpIndex: r.OpIndex, Writer: writers[0],
				})
			}
		}
	}
	return out
}

// DetectG1b finds every ok read that observed a value a committed
// transaction wrote but later overwrote, within that same transaction,
// before committing.
func DetectG1b(h history.History, idx map[string]*dependency.KeyIndex) []Witness {
	intermediate := make(map[string]map[int64]int) // key -> value -> writer op index
	for _, o := range h.All() {
		if o.Type != op.Ok {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok {
			continue
		}
		perKeyWrites := make(map[string][]int64)
		for _, m := range txn.Ops {
			switch m.Kind {
			case op.MicroWrite, op.MicroAppend:
				perKeyWrites[m.Key] = append(perKeyWrites[m.Key], m.Arg)
			case op.MicroCAS:
				perKeyWrites[m.Key] = append(perKeyWrites[m.Key], m.CASNew)
			}
		}
		for key, vs := range perKeyWrites {
			if len(vs) < 2 {
				continue
			}
			for _, v := range vs[:len(vs)-1] {
				if intermediate[key] == nil {
					intermediate[key] = make(map[int64]int)
				}
				intermediate[key][v] = o.Index
			}
		}
	}

	var out []Witness
	for key, ki := range idx {
		vals, ok := intermediate[key]
		if !ok {
			continue
		}
		for _, r := range ki.Reads {
			vs := observedValues(r)
			if r.IsList && len(vs) > 0 {
				// A list read observes the version ending in its last
				// element; earlier elements are prefixes of that version.
				vs = vs[len(vs)-1:]
			}
			for _, v := range vs {
				if writer, isIntermediate := vals[v]; isIntermediate {
					out = append(out, Witness{
						Kind: G1b, Key: key, Value: v,
						OpIndex: r.OpIndex, Writer: writer,
					})
				}
			}
		}
	}
	return out
}

// DetectInternal finds, within a single transaction, any read of a key
// disagreeing with that same transaction's own prior write or read of the
// key.
func DetectInternal(h history.History) []Witness {
	var out []Witness
	for _, o := range h.All() {
		if o.Type != op.Ok {
			continue
		}
		txn, ok := o.Value.(op.TxnValue)
		if !ok {
			continue
		}
		known := make(map[string]int64)
		knownList := make(map[string][]int64)
		for _, m := range txn.Ops {
			switch m.Kind {
			case op.MicroWrite:
				known[m.Key] = m.Arg
				delete(knownList, m.Key)
			case op.MicroAppend:
				// Without a prior read of the key in this transaction the
				// full list is unknown, so an append alone is not tracked.
				if l, tracked := knownList[m.Key]; tracked {
					knownList[m.Key] = append(l, m.Arg)
				}
			case op.MicroCAS:
				known[m.Key] = m.CASNew
				delete(knownList, m.Key)
			case op.MicroRead:
				if !m.ReadKnown {
					continue
				}
				if m.IsList {
					if want, tracked := knownList[m.Key]; tracked && !sliceEqual(want, m.ReadList) {
						out = append(out, Witness{Kind: Internal, Key: m.Key, OpIndex: o.Index})
					}
					knownList[m.Key] = append([]int64(nil), m.ReadList...)
				} else if !m.ReadNil {
					if want, tracked := known[m.Key]; tracked && want != m.ReadScalar {
						out = append(out, Witness{Kind: Internal, Key: m.Key, OpIndex: o.Index})
					}
					known[m.Key] = m.ReadScalar
				}
			}
		}
	}
	return out
}

func observedValues(r dependency.ReadEvent) []int64 {
	if r.Nil {
		return nil
	}
	if r.IsList {
		return r.List
	}
	return []int64{r.Scalar}
}

func anyCommitted(h history.History, opIndices []int) bool {
	for _, idx := range opIndices {
		if h.At(idx).Type == op.Ok {
			return true
		}
	}
	return false
}

func sliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
