// File: wr.go
// Role: write-read graph construction, spec.md §4.3.1.
package dependency

import (
	"fmt"

	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
)

// MultipleWritersAnomaly is reported when more than one committed
// transaction claims to have written the same (key, value) pair.
type MultipleWritersAnomaly struct {
	Key     string
	Value   int64
	Writers []int
}

func (a MultipleWritersAnomaly) String() string {
	return fmt.Sprintf("multiple writers of %s=%d: ops %v", a.Key, a.Value, a.Writers)
}

// WRGraph builds the write-read graph: an edge T1 ->{wr} T2 for every value
// v of key k read by T2 where T1 is a committed writer of v; when v has more
// than one committed writer, each gets an edge and the value is also
// reported as a MultipleWritersAnomaly. Idx must have been built by
// IndexKeys over the same history.
func WRGraph(h history.History, idx map[string]*KeyIndex) (*dgraph.Graph, []MultipleWritersAnomaly) {
	g := dgraph.New()
	var anomalies []MultipleWritersAnomaly

	for key, ki := range idx {
		for _, r := range ki.Reads {
			if r.Nil {
				continue
			}
			values := r.List
			if !r.IsList {
				values = []int64{r.Scalar}
			}
			for _, v := range values {
				writers := ki.CommittedWriters(h, v)
				if len(writers) == 0 {
					continue
				}
				if len(writers) > 1 {
					anomalies = append(anomalies, MultipleWritersAnomaly{Key: key, Value: v, Writers: writers})
				}
				for _, w := range writers {
					if w == r.OpIndex {
						continue
					}
					g.Link(w, r.OpIndex, dgraph.RelWR)
				}
			}
		}
	}
	return g, anomalies
}
