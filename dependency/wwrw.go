// File: wwrw.go
// Role: write-write and read-write graph construction from a combined
// version order, spec.md §4.3.2's final paragraph.
package dependency

import "github.com/jepsenhq/chronos/dgraph"

// WWRWGraph derives ww and rw edges on the main dependency graph (vertices
// are operation indices) from each key's version order: for vo edge
// v1 -> v2 on key k, every writer of v1 links to every writer of v2 with
// ww, and every reader that observed v1 without yet observing v2 links to
// every writer of v2 with rw.
func WWRWGraph(idx map[string]*KeyIndex, vos VersionOrders) *dgraph.Graph {
	g := dgraph.New()

	for key, ki := range idx {
		vo, ok := vos.Graphs[key]
		if !ok {
			continue
		}
		for _, v1 := range vo.Vertices() {
			for _, e := range vo.Out(v1) {
				v2 := e.Vertex
				if v1 == nilVertex {
					continue // initial-state edges carry no writer of "nil"
				}
				writersV1 := ki.Writers[int64(v1)]
				writersV2 := ki.Writers[int64(v2)]
				for _, w1 := range writersV1 {
					for _, w2 := range writersV2 {
						if w1 == w2 {
							continue
						}
						g.Link(w1, w2, dgraph.RelWW)
					}
				}

				for _, r := range ki.Reads {
					if !observedWithoutSeeing(r, int64(v1), int64(v2)) {
						continue
					}
					for _, w2 := range writersV2 {
						if r.OpIndex == w2 {
							continue
						}
						g.Link(r.OpIndex, w2, dgraph.RelRW)
					}
				}
			}
		}
	}
	return g
}

// observedWithoutSeeing reports whether read r observed value v1 of its key
// without also observing the later version v2 — evidence its snapshot
// predates v2's write.
func observedWithoutSeeing(r ReadEvent, v1, v2 int64) bool {
	if r.Nil {
		return false
	}
	if !r.IsList {
		return r.Scalar == v1
	}
	sawV1, sawV2 := false, false
	for _, v := range r.List {
		if v == v1 {
			sawV1 = true
		}
		if v == v2 {
			sawV2 = true
		}
	}
	return sawV1 && !sawV2
}
