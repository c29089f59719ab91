// File: collapse.go
// Role: Collapse contracts every vertex failing a keep predicate, linking
// each of its predecessors directly to each of its successors so that
// reachability among kept vertices is preserved.
package dgraph

// Collapse returns a new Graph containing only vertices for which keep
// returns true, with edges added so that reachability between kept
// vertices through chains of dropped vertices is preserved: if p -> d -> s
// and d is dropped, an edge p -> s is added, carrying the union of the
// relations on the two spliced edges (the splice is evidence, not a
// specific relation, so callers that need precise relation semantics should
// collapse only graphs where that looseness is acceptable — e.g. process-
// order graphs used purely for reachability pruning, not for anomaly
// classification).
//
// Complexity: each dropped vertex is processed once, splicing its
// predecessors to its successors; this is linear in edges only when
// dropped vertices do not chain into one another. Chains of dropped
// vertices require repeated splicing (processed in vertex-id order until
// a pass adds no new edge or relation bit), which is
// O(D) passes over the affected neighborhood in the worst case, where D is
// the number of dropped vertices in a chain.
func (g *Graph) Collapse(keep func(v int) bool) *Graph {
	g.muEdge.RLock()
	// Snapshot adjacency so we can mutate freely without holding the lock.
	adj := make(map[int]map[int]Rel, len(g.adjacency))
	for from, tos := range g.adjacency {
		cp := make(map[int]Rel, len(tos))
		for to, r := range tos {
			cp[to] = r
		}
		adj[from] = cp
	}
	verts := g.verticesLocked()
	g.muEdge.RUnlock()

	dropped := make(map[int]bool)
	for _, v := range verts {
		if !keep(v) {
			dropped[v] = true
		}
	}

	// Splice dropped vertices out, processing in ascending id order,
	// repeating until a pass adds no new edge or relation bit (handles
	// chains of dropped vertices).
	changed := true
	for changed {
		changed = false
		for _, d := range verts {
			if !dropped[d] {
				continue
			}
			preds := predecessorsOf(adj, d)
			succs := adj[d]
			if len(succs) == 0 {
				continue
			}
			for p, rin := range preds {
				if p == d {
					continue
				}
				for s, rout := range succs {
					if s == d || s == p {
						continue
					}
					rel := rin.Union(rout)
					if adj[p][s]|rel != adj[p][s] {
						changed = true
						addEdge(adj, p, s, rel)
					}
				}
			}
		}
	}

	out := New()
	for from, tos := range adj {
		if dropped[from] {
			continue
		}
		for to, r := range tos {
			if dropped[to] {
				continue
			}
			out.Link(from, to, r)
		}
	}
	return out
}

func predecessorsOf(adj map[int]map[int]Rel, v int) map[int]Rel {
	out := make(map[int]Rel)
	for from, tos := range adj {
		if r, ok := tos[v]; ok {
			out[from] |= r
		}
	}
	return out
}

func addEdge(adj map[int]map[int]Rel, a, b int, rel Rel) {
	if adj[a] == nil {
		adj[a] = make(map[int]Rel)
	}
	adj[a][b] |= rel
}
