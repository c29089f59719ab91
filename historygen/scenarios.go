// File: scenarios.go
// Role: the fixed-shape histories of spec.md §8's concrete scenarios (S1-S6),
// one Constructor each plus a convenience function that runs it through
// Build with no options, since none of these need randomness.
package historygen

import (
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

func p(n int64) op.Process { return op.ClientProcess(n) }

// G0WriteCycle reproduces spec.md §8 S1: two transactions each appending to
// both x and y, and a final read observing x and y in opposite orders, so
// every pairwise ww/wr ordering of the two writer transactions cycles.
func G0WriteCycle() Constructor {
	return func(s *scratch, _ *config) error {
		txn1 := op.Txn(op.Append("x", 1), op.Append("y", 1))
		s.push(p(0), op.Invoke, "txn", txn1)
		s.push(p(0), op.Ok, "txn", txn1)

		txn2 := op.Txn(op.Append("x", 2), op.Append("y", 2))
		s.push(p(1), op.Invoke, "txn", txn2)
		s.push(p(1), op.Ok, "txn", txn2)

		s.push(p(2), op.Invoke, "txn", op.Txn(op.Read("x"), op.Read("y")))
		s.push(p(2), op.Ok, "txn", op.Txn(
			op.ReadResultList("x", []int64{1, 2}),
			op.ReadResultList("y", []int64{2, 1}),
		))
		return nil
	}
}

// G1aAbortedRead reproduces spec.md §8 S2: a failed append to x, followed
// by a read that observes the aborted write's effect anyway.
func G1aAbortedRead() Constructor {
	return func(s *scratch, _ *config) error {
		write := op.Txn(op.Append("x", 1))
		s.push(p(0), op.Invoke, "txn", write)
		s.push(p(0), op.Fail, "txn", write)

		s.push(p(1), op.Invoke, "txn", op.Txn(op.Read("x")))
		s.push(p(1), op.Ok, "txn", op.Txn(op.ReadResultList("x", []int64{1})))
		return nil
	}
}

// G1cReadWriteCycle reproduces spec.md §8 S3: two transactions, each
// appending one key and reading the other's just-written value, forming a
// wr-cycle in both directions.
func G1cReadWriteCycle() Constructor {
	return func(s *scratch, _ *config) error {
		s.push(p(0), op.Invoke, "txn", op.Txn(op.Append("x", 1), op.Read("y")))
		s.push(p(0), op.Ok, "txn", op.Txn(op.Append("x", 1), op.ReadResultList("y", []int64{1})))

		s.push(p(1), op.Invoke, "txn", op.Txn(op.Append("y", 1), op.Read("x")))
		s.push(p(1), op.Ok, "txn", op.Txn(op.Append("y", 1), op.ReadResultList("x", []int64{1})))
		return nil
	}
}

// CASLinearizableSuccess reproduces spec.md §8 S4: a sequential write, CAS,
// and read on a single register, admitting the obvious linearization.
func CASLinearizableSuccess() Constructor {
	return func(s *scratch, _ *config) error {
		s.push(p(0), op.Invoke, "write", op.Txn(op.Write("x", 1)))
		s.push(p(0), op.Ok, "write", op.Txn(op.Write("x", 1)))

		s.push(p(1), op.Invoke, "cas", op.Txn(op.CAS("x", 1, 2)))
		s.push(p(1), op.Ok, "cas", op.Txn(op.CAS("x", 1, 2)))

		s.push(p(2), op.Invoke, "read", op.Txn(op.Read("x")))
		s.push(p(2), op.Ok, "read", op.Txn(op.ReadResultScalar("x", 2)))
		return nil
	}
}

// CASStaleRead reproduces spec.md §8 S5: process C reads 1 twice, the
// second time after process B's write of 2 has already completed, which no
// single total order of the register's writes and reads can explain.
func CASStaleRead() Constructor {
	return func(s *scratch, _ *config) error {
		writeA := op.Txn(op.Write("x", 1))
		writeB := op.Txn(op.Write("x", 2))
		read1 := op.Txn(op.Read("x"))
		read1Result := op.Txn(op.ReadResultScalar("x", 1))

		s.push(p(0), op.Invoke, "write", writeA) // 0: A invokes write 1
		s.push(p(1), op.Invoke, "write", writeB) // 1: B invokes write 2
		s.push(p(0), op.Ok, "write", writeA)      // 2: A's write 1 completes
		s.push(p(2), op.Invoke, "read", read1)    // 3: C invokes read
		s.push(p(2), op.Ok, "read", read1Result)  // 4: C observes 1
		s.push(p(1), op.Ok, "write", writeB)      // 5: B's write 2 completes
		s.push(p(2), op.Invoke, "read", read1)    // 6: C invokes read again
		s.push(p(2), op.Ok, "read", read1Result)  // 7: C observes 1 again, stale
		return nil
	}
}

// InternalConsistencyViolation reproduces spec.md §8 S6: a single
// transaction whose second read of x disagrees with its own prior append.
func InternalConsistencyViolation() Constructor {
	return func(s *scratch, _ *config) error {
		txn := op.Txn(
			op.Read("x"),
			op.Append("x", 2),
			op.Read("x"),
		)
		result := op.Txn(
			op.ReadResultList("x", []int64{1}),
			op.Append("x", 2),
			op.ReadResultList("x", []int64{1}),
		)
		s.push(p(0), op.Invoke, "txn", txn)
		s.push(p(0), op.Ok, "txn", result)
		return nil
	}
}

// mustBuild runs a single scenario Constructor with no options; every
// scenario here is a fixed literal sequence, so Build can never fail on it.
func mustBuild(cons Constructor) history.History {
	h, err := Build(nil, cons)
	if err != nil {
		panic(err)
	}
	return h
}

// S1 returns the G0WriteCycle history directly.
func S1() history.History { return mustBuild(G0WriteCycle()) }

// S2 returns the G1aAbortedRead history directly.
func S2() history.History { return mustBuild(G1aAbortedRead()) }

// S3 returns the G1cReadWriteCycle history directly.
func S3() history.History { return mustBuild(G1cReadWriteCycle()) }

// S4 returns the CASLinearizableSuccess history directly.
func S4() history.History { return mustBuild(CASLinearizableSuccess()) }

// S5 returns the CASStaleRead history directly.
func S5() history.History { return mustBuild(CASStaleRead()) }

// S6 returns the InternalConsistencyViolation history directly.
func S6() history.History { return mustBuild(InternalConsistencyViolation()) }
