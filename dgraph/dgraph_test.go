package dgraph_test

import (
	"testing"

	"github.com/jepsenhq/chronos/dgraph"
	"github.com/stretchr/testify/require"
)

func TestLinkUnionsRelations(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 2, dgraph.RelWW)
	g.Link(1, 2, dgraph.RelWR)

	require.True(t, g.HasEdge(1, 2, dgraph.RelWW))
	require.True(t, g.HasEdge(1, 2, dgraph.RelWR))
	require.False(t, g.HasEdge(1, 2, dgraph.RelRW))
}

func TestLinkRejectsSelfEdge(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 1, dgraph.RelWW)
	require.False(t, g.HasEdge(1, 1, 0))
}

func TestProjectAndUnlinkRel(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 2, dgraph.RelWW)
	g.Link(1, 2, dgraph.RelWR)
	g.Link(2, 3, dgraph.RelWR)

	wr := g.ProjectRel(dgraph.RelWR)
	require.True(t, wr.HasEdge(1, 2, dgraph.RelWR))
	require.False(t, wr.HasEdge(1, 2, dgraph.RelWW))
	require.True(t, wr.HasEdge(2, 3, dgraph.RelWR))

	withoutWW := g.UnlinkRel(dgraph.RelWW)
	require.False(t, withoutWW.HasEdge(1, 2, dgraph.RelWW))
	require.True(t, withoutWW.HasEdge(1, 2, dgraph.RelWR))
}

func TestSCCFindsCycle(t *testing.T) {
	g := dgraph.New()
	g.Link(0, 1, dgraph.RelWW)
	g.Link(1, 2, dgraph.RelWW)
	g.Link(2, 0, dgraph.RelWW)
	g.Link(3, 4, dgraph.RelProcess) // disjoint acyclic edge

	sccs := g.SCC()
	require.Len(t, sccs, 1)
	require.Equal(t, []int{0, 1, 2}, sccs[0])

	cycle, ok := g.FindCycle(sccs[0])
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 0}, cycle)
}

func TestSCCNoCycle(t *testing.T) {
	g := dgraph.New()
	g.Link(0, 1, dgraph.RelWW)
	g.Link(1, 2, dgraph.RelWW)
	require.Empty(t, g.SCC())
}

func TestFindCycleStartingWithRequiresPrefixEdge(t *testing.T) {
	g := dgraph.New()
	g.Link(0, 1, dgraph.RelWW)
	g.Link(1, 2, dgraph.RelWR)
	g.Link(2, 0, dgraph.RelWW)

	wrOnly := g.ProjectRel(dgraph.RelWR)
	scc := []int{0, 1, 2}

	cycle, ok := g.FindCycleStartingWith(wrOnly, g, scc)
	require.True(t, ok)
	require.Equal(t, 1, cycle[0]) // must start with the wr edge's source
}

func TestCollapsePreservesReachability(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 2, dgraph.RelProcess)
	g.Link(2, 3, dgraph.RelProcess)

	out := g.Collapse(func(v int) bool { return v != 2 })
	require.True(t, out.HasEdge(1, 3, dgraph.RelProcess))
	require.False(t, out.HasEdge(1, 2, 0))
}

func TestUnionMergesGraphs(t *testing.T) {
	a := dgraph.New()
	a.Link(1, 2, dgraph.RelWW)
	b := dgraph.New()
	b.Link(1, 2, dgraph.RelWR)

	u := dgraph.Union(a, b)
	require.True(t, u.HasEdge(1, 2, dgraph.RelWW))
	require.True(t, u.HasEdge(1, 2, dgraph.RelWR))
}
