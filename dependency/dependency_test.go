package dependency_test

import (
	"testing"

	"github.com/jepsenhq/chronos/dependency"
	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
	"github.com/stretchr/testify/require"
)

func p(n int64) op.Process { return op.ClientProcess(n) }

func TestWRGraphLinksWriterToReader(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Read("x"))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultList("x", []int64{1}))},
	})

	idx := dependency.IndexKeys(h)
	g, multi := dependency.WRGraph(h, idx)
	require.Empty(t, multi)
	require.True(t, g.HasEdge(1, 3, dgraph.RelWR))
}

func TestWRGraphReportsMultipleWriters(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 5))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 5))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 5))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 5))},
		{Time: 4, Process: p(2), Type: op.Invoke, F: "txn", Value: op.Txn(op.Read("x"))},
		{Time: 5, Process: p(2), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 5))},
	})

	idx := dependency.IndexKeys(h)
	_, multi := dependency.WRGraph(h, idx)
	require.Len(t, multi, 1)
	require.ElementsMatch(t, []int{1, 3}, multi[0].Writers)
}

func TestProcessOrderGraphChainsSameProcess(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 1))},
		{Time: 2, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 2))},
		{Time: 3, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 2))},
	})

	g := dependency.ProcessOrderGraph(h)
	require.True(t, g.HasEdge(1, 3, dgraph.RelProcess))
}

func TestRealtimeOrderGraphLinksAcrossProcesses(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 1))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 2))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.Write("x", 2))},
	})

	g := dependency.RealtimeOrderGraph(h)
	require.True(t, g.HasEdge(1, 2, dgraph.RelRealtime))
}

func TestBuildVersionOrdersDropsCyclicOptionalSource(t *testing.T) {
	// A single transaction reads x=2 then writes x=1, which under
	// writes-follow-reads would assert 2 -> 1, contradicting the
	// initial-state-derived nil -> 1, nil -> 2 (no direct conflict there,
	// but combined with a second transaction asserting 1 -> 2 via wfr, we
	// get a 1<->2 cycle once both are present).
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 1), op.Write("x", 2))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 1), op.Write("x", 2))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 2), op.Write("x", 1))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 2), op.Write("x", 1))},
	})

	idx := dependency.IndexKeys(h)
	opts := dependency.NewOptions(dependency.WithWritesFollowReads())
	vos := dependency.BuildVersionOrders(h, idx, opts)

	require.NotEmpty(t, vos.Cyclic)
	require.Equal(t, "x", vos.Cyclic[0].Key)
}

func TestMonotonicKeyGraphOrdersReads(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Read("c"))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("c", 3))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Read("c"))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("c", 7))},
	})

	idx := dependency.IndexKeys(h)
	g := dependency.MonotonicKeyGraph(idx)
	require.True(t, g.HasEdge(1, 3, dgraph.RelPerKey))
	require.False(t, g.HasEdge(3, 1, dgraph.RelPerKey))
}

func TestCheckInvariantsFlagsDuplicateAppend(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.Append("x", 1))},
	})

	idx := dependency.IndexKeys(h)
	err := dependency.CheckInvariants(idx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate append")
}

func TestCheckInvariantsPassesOnDistinctAppends(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.Append("x", 1))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Append("x", 2))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.Append("x", 2))},
	})

	idx := dependency.IndexKeys(h)
	require.NoError(t, dependency.CheckInvariants(idx))
}

func TestModelOptionsResolvesNamedModel(t *testing.T) {
	opts := dependency.ModelOptions("serializable")
	_ = opts // Options fields are unexported; resolving without panic is the contract.
}
