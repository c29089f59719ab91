package anomaly_test

import (
	"testing"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/dependency"
	"github.com/jepsenhq/chronos/dgraph"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
	"github.com/stretchr/testify/require"
)

func p(n int64) op.Process { return op.ClientProcess(n) }

func TestClassifyAllWWIsG0(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 3, dgraph.RelWW)
	g.Link(3, 1, dgraph.RelWW)

	require.Equal(t, anomaly.G0, anomaly.Classify(g, []int{1, 3, 1}))
}

func TestClassifyWithWRIsG1c(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 3, dgraph.RelWR)
	g.Link(3, 1, dgraph.RelWW)

	require.Equal(t, anomaly.G1c, anomaly.Classify(g, []int{1, 3, 1}))
}

func TestClassifyTwoRWIsG2(t *testing.T) {
	g := dgraph.New()
	g.Link(1, 3, dgraph.RelRW)
	g.Link(3, 1, dgraph.RelRW)

	require.Equal(t, anomaly.G2, anomaly.Classify(g, []int{1, 3, 1}))
}

func TestDetectG1aFindsAbortedReadWitness(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.Write("x", 9))},
		{Time: 1, Process: p(0), Type: op.Fail, F: "txn", Value: op.Txn(op.Write("x", 9))},
		{Time: 2, Process: p(1), Type: op.Invoke, F: "txn", Value: op.Txn(op.Read("x"))},
		{Time: 3, Process: p(1), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 9))},
	})

	idx := dependency.IndexKeys(h)
	witnesses := anomaly.DetectG1a(h, idx)
	require.Len(t, witnesses, 1)
	require.Equal(t, anomaly.G1a, witnesses[0].Kind)
	require.Equal(t, 3, witnesses[0].OpIndex)
}

func TestDetectInternalFindsSelfContradiction(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 1), op.ReadResultScalar("x", 2))},
		{Time: 1, Process: p(0), Type: op.Ok, F: "txn", Value: op.Txn(op.ReadResultScalar("x", 1), op.ReadResultScalar("x", 2))},
	})

	witnesses := anomaly.DetectInternal(h)
	require.Len(t, witnesses, 1)
	require.Equal(t, anomaly.Internal, witnesses[0].Kind)
}

func TestExpandG2IncludesGSingleAndG1c(t *testing.T) {
	got := anomaly.Expand([]anomaly.Kind{anomaly.G2})
	require.Contains(t, got, anomaly.G2)
	require.Contains(t, got, anomaly.GSingle)
	require.Contains(t, got, anomaly.G1c)
	require.Contains(t, got, anomaly.G0)
}

func TestMostSpecificDropsGeneralWhenSpecificPresent(t *testing.T) {
	got := anomaly.MostSpecific([]anomaly.Kind{anomaly.G0, anomaly.G1c})
	require.Equal(t, []anomaly.Kind{anomaly.G0}, got)
}

func TestSummarizeComputesWorst(t *testing.T) {
	s := anomaly.Summarize([]anomaly.Witness{{Kind: anomaly.G1a}, {Kind: anomaly.G0}})
	require.Equal(t, 2, s.Total)
	require.Equal(t, anomaly.G0, s.Worst)
}
