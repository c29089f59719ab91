package linear_test

import (
	"context"
	"testing"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/linear"
	"github.com/jepsenhq/chronos/model"
	"github.com/jepsenhq/chronos/op"
	"github.com/stretchr/testify/require"
)

func p(n int64) op.Process { return op.ClientProcess(n) }

func single(m op.MicroOp) op.Value { return op.Txn(m) }

func TestSearchAcceptsSequentialCASHistory(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, Value: single(op.Write("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, Value: single(op.Write("x", 1))},
		{Time: 2, Process: p(0), Type: op.Invoke, Value: single(op.CAS("x", 1, 2))},
		{Time: 3, Process: p(0), Type: op.Ok, Value: single(op.CAS("x", 1, 2))},
		{Time: 4, Process: p(0), Type: op.Invoke, Value: single(op.Read("x"))},
		{Time: 5, Process: p(0), Type: op.Ok, Value: single(op.ReadResultScalar("x", 2))},
	})

	ok, cex, err := linear.Search(context.Background(), h, model.CASRegister{})
	require.NoError(t, err)
	require.Nil(t, cex)
	require.True(t, ok)
}

func TestSearchRejectsStaleReadAfterCAS(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, Value: single(op.Write("x", 1))},
		{Time: 1, Process: p(0), Type: op.Ok, Value: single(op.Write("x", 1))},
		{Time: 2, Process: p(0), Type: op.Invoke, Value: single(op.CAS("x", 1, 2))},
		{Time: 3, Process: p(0), Type: op.Ok, Value: single(op.CAS("x", 1, 2))},
		{Time: 4, Process: p(0), Type: op.Invoke, Value: single(op.Read("x"))},
		{Time: 5, Process: p(0), Type: op.Ok, Value: single(op.ReadResultScalar("x", 1))},
	})

	ok, cex, err := linear.Search(context.Background(), h, model.CASRegister{})
	require.NoError(t, err)
	require.False(t, ok)
	require.NotNil(t, cex)
}

func TestSearchAllowsConcurrentReorderingToLegalOrder(t *testing.T) {
	// Two concurrent writes to x (1 then 2); a read observing 1 is legal
	// under the linearization that puts the write of 2 first.
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, Value: single(op.Write("x", 1))},
		{Time: 1, Process: p(1), Type: op.Invoke, Value: single(op.Write("x", 2))},
		{Time: 2, Process: p(1), Type: op.Ok, Value: single(op.Write("x", 2))},
		{Time: 3, Process: p(0), Type: op.Ok, Value: single(op.Write("x", 1))},
		{Time: 4, Process: p(0), Type: op.Invoke, Value: single(op.Read("x"))},
		{Time: 5, Process: p(0), Type: op.Ok, Value: single(op.ReadResultScalar("x", 1))},
	})

	ok, _, err := linear.Search(context.Background(), h, model.CASRegister{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSearchDoesNotReapplyCounterAddConsumedEarly(t *testing.T) {
	// Two concurrent adds to a counter: A adds 5 (invoke@0, ok@6), B adds 3
	// (invoke@1, ok@4). An intermediate read (invoke@2, ok@3) can only
	// observe "B applied, A not yet" (value 3), which forces B to be
	// linearized early — consumed out of its natural slot, during the
	// intermediate read's own Ok processing, rather than at its own Ok
	// event@4. A later read (invoke@5, ok@7) observes the true total 8. If
	// B's own Ok@4 re-steps the model (double-applying its add), the final
	// read sees 11 or more instead of 8 and the search wrongly reports this
	// genuinely linearizable history as invalid.
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, Value: single(op.Write("c", 5))},
		{Time: 1, Process: p(1), Type: op.Invoke, Value: single(op.Write("c", 3))},
		{Time: 2, Process: p(2), Type: op.Invoke, Value: single(op.Read("c"))},
		{Time: 3, Process: p(2), Type: op.Ok, Value: single(op.ReadResultScalar("c", 3))},
		{Time: 4, Process: p(1), Type: op.Ok, Value: single(op.Write("c", 3))},
		{Time: 5, Process: p(3), Type: op.Invoke, Value: single(op.Read("c"))},
		{Time: 6, Process: p(0), Type: op.Ok, Value: single(op.Write("c", 5))},
		{Time: 7, Process: p(3), Type: op.Ok, Value: single(op.ReadResultScalar("c", 8))},
	})

	ok, cex, err := linear.Search(context.Background(), h, model.Counter{})
	require.NoError(t, err)
	require.Nil(t, cex)
	require.True(t, ok)
}

func TestNormalizeInfoReadsRemapsPureReadsToFail(t *testing.T) {
	h := history.Index([]op.Operation{
		{Time: 0, Process: p(0), Type: op.Invoke, Value: single(op.Read("x"))},
		{Time: 1, Process: p(0), Type: op.Info, Value: single(op.Read("x"))},
	})

	out := linear.NormalizeInfoReads(h)
	require.Equal(t, op.Fail, out.At(1).Type)
}
