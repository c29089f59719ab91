// File: scc.go
// Role: Tarjan's strongly-connected-components algorithm over Graph.
// Grounded on the Tarjan implementation in
// _examples/other_examples/.../gopls-internal-cache-metadata-graph.go.go's
// detectImportCycles, simplified: our Graph is frozen before SCC runs (no
// incremental updates), so the disjoint-set path compression that
// implementation uses to merge nodes mid-traversal is unnecessary here — we
// use the textbook index/lowlink/on-stack variant directly.
package dgraph

// SCC returns every non-trivial strongly connected component of g (size >=
// 2 vertices; self-loops are disallowed by Link, so a single-vertex SCC is
// never non-trivial here). Components are returned as sorted vertex-id
// slices, and the list of components is itself sorted by each component's
// minimum vertex id, so the result is a deterministic function of g's
// edges.
func (g *Graph) SCC() [][]int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	type state struct {
		index, lowlink int
		onStack        bool
	}

	verts := g.verticesLocked()
	st := make(map[int]*state, len(verts))
	var stack []int
	index := 0
	var sccs [][]int

	var visit func(v int)
	visit = func(v int) {
		s := &state{index: index, lowlink: index, onStack: true}
		st[v] = s
		index++
		stack = append(stack, v)

		for _, e := range sortedEdges(g.adjacency[v]) {
			w := e.Vertex
			ws, seen := st[w]
			switch {
			case !seen:
				visit(w)
				if st[w].lowlink < s.lowlink {
					s.lowlink = st[w].lowlink
				}
			case ws.onStack:
				if ws.index < s.lowlink {
					s.lowlink = ws.index
				}
			}
		}

		if s.lowlink == s.index {
			var comp []int
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				st[w].onStack = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			if len(comp) >= 2 {
				sortInts(comp)
				sccs = append(sccs, comp)
			}
		}
	}

	for _, v := range verts {
		if _, seen := st[v]; !seen {
			visit(v)
		}
	}

	sortComponents(sccs)
	return sccs
}

// verticesLocked is Vertices without re-acquiring muEdge; callers must hold
// at least a read lock.
func (g *Graph) verticesLocked() []int {
	seen := make(map[int]struct{}, len(g.adjacency))
	for from, tos := range g.adjacency {
		seen[from] = struct{}{}
		for to := range tos {
			seen[to] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortInts(out)
	return out
}

func sortComponents(sccs [][]int) {
	for i := 1; i < len(sccs); i++ {
		for j := i; j > 0 && sccs[j-1][0] > sccs[j][0]; j-- {
			sccs[j-1], sccs[j] = sccs[j], sccs[j-1]
		}
	}
}
