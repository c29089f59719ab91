// File: cycle.go
// Role: shortest-cycle discovery within a strongly connected component,
// grounded on the layered-frontier BFS shape of
// _examples/katalvlaran-lvlath/bfs (breadth expansion one layer at a time,
// recording parents for path reconstruction) combined with the back-edge
// bookkeeping of _examples/katalvlaran-lvlath/dfs/cycle.go (canonical,
// deterministic witness selection).
package dgraph

// FindCycle returns the shortest cycle within the given set of vertices
// (normally one SCC from g.SCC()), as a closed vertex sequence
// [v0, v1, ..., vk, v0]. Ties are broken by preferring the lexicographically
// smallest vertex-index sequence, which in particular prefers the lowest
// starting vertex (spec.md §5 "ties in shortest-cycle search broken by
// lowest vertex index first").
func (g *Graph) FindCycle(sccVerts []int) ([]int, bool) {
	return g.FindCycleStartingWith(g, g, sccVerts)
}

// FindCycleStartingWith finds the shortest cycle within sccVerts whose
// first edge is drawn from firstEdge, and whose remaining edges are drawn
// from rest. This proves an anomaly requires a specific edge type — e.g.
// "G1c must contain a wr edge" is checked by passing the wr-only projection
// as firstEdge and the full graph as rest.
func (g *Graph) FindCycleStartingWith(firstEdge, rest *Graph, sccVerts []int) ([]int, bool) {
	sccSet := make(map[int]struct{}, len(sccVerts))
	for _, v := range sccVerts {
		sccSet[v] = struct{}{}
	}
	sorted := append([]int(nil), sccVerts...)
	sortInts(sorted)

	var best []int

	for _, v := range sorted {
		for _, e := range firstEdge.Out(v) {
			u := e.Vertex
			if _, ok := sccSet[u]; !ok {
				continue
			}
			if u == v {
				continue
			}
			path, ok := bfsShortestPath(rest, sccSet, u, v)
			if !ok {
				continue
			}
			cand := append([]int{v}, path...)
			if best == nil || lessCycle(cand, best) {
				best = cand
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// bfsShortestPath finds the shortest path from start to target using only
// edges of g whose endpoints both lie in allowed, returning the vertex
// sequence [start, ..., target] inclusive. Neighbors are explored in sorted
// order so that, among equal-length paths, the lexicographically smallest
// is found first and never displaced (BFS visits each vertex once, via its
// first-discovered, lexicographically-least predecessor chain).
func bfsShortestPath(g *Graph, allowed map[int]struct{}, start, target int) ([]int, bool) {
	if start == target {
		return []int{start}, true
	}

	visited := map[int]struct{}{start: {}}
	parent := map[int]int{}
	queue := []int{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, e := range g.Out(v) {
			u := e.Vertex
			if _, ok := allowed[u]; !ok {
				continue
			}
			if _, seen := visited[u]; seen {
				continue
			}
			visited[u] = struct{}{}
			parent[u] = v
			if u == target {
				return reconstruct(parent, start, target), true
			}
			queue = append(queue, u)
		}
	}
	return nil, false
}

func reconstruct(parent map[int]int, start, target int) []int {
	var rev []int
	for cur := target; ; {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		cur = parent[cur]
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// lessCycle orders two closed cycle witnesses by (length, lexicographic
// vertex sequence), both ascending.
func lessCycle(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
