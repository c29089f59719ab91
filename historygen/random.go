// File: random.go
// Role: RandomCASRegister, a seeded-*rand.Rand fuzz generator for
// concurrent CAS-register histories, generalizing the teacher's
// WithSeed-driven RandomSparse/RandomRegular topology builders
// (impl_random_sparse.go, impl_random_regular.go) from graph topology to
// op interleaving.
package historygen

import (
	"errors"
	"fmt"

	"github.com/jepsenhq/chronos/op"
)

// ErrNoSeed is returned by RandomCASRegister's Constructor when Build was
// called without WithSeed.
var ErrNoSeed = errors.New("historygen: RandomCASRegister requires WithSeed")

type logicalOp struct {
	kind string // "write", "cas", or "read"
	arg  int64
}

type procState struct {
	proc        op.Process
	ops         []logicalOp
	nextIdx     int
	invoked     bool
	invokeValue int64 // the CAS old-value snapshot taken at invoke time
}

// RandomCASRegister builds a concurrent history of numOps writes, CASes and
// reads against key, spread across concurrency client processes, by
// randomly interleaving each process's invoke with other processes'
// pending invokes and completions. Every completion is computed from the
// register's true state at the moment it is appended, so the resulting
// history is linearizable by construction: it exercises Search and the
// wire/store pipeline on realistic-shaped input without needing the
// checker to reject it. Requires WithSeed; without one it returns
// ErrNoSeed rather than silently falling back to global math/rand state.
func RandomCASRegister(key string, numOps, concurrency int) Constructor {
	return func(s *scratch, cfg *config) error {
		if cfg.rng == nil {
			return fmt.Errorf("%w", ErrNoSeed)
		}
		if concurrency < 1 {
			concurrency = 1
		}
		if numOps < 1 {
			numOps = 1
		}
		rng := cfg.rng

		procs := make([]*procState, concurrency)
		perProc, extra := numOps/concurrency, numOps%concurrency
		for i := range procs {
			n := perProc
			if i < extra {
				n++
			}
			ops := make([]logicalOp, n)
			for j := range ops {
				switch rng.Intn(3) {
				case 0:
					ops[j] = logicalOp{kind: "write", arg: rng.Int63n(100)}
				case 1:
					ops[j] = logicalOp{kind: "cas", arg: rng.Int63n(100)}
				default:
					ops[j] = logicalOp{kind: "read"}
				}
			}
			procs[i] = &procState{proc: op.ClientProcess(int64(i)), ops: ops}
		}

		var state int64
		var stateSet bool

		for remaining := numOps; remaining > 0; {
			var idle, active []*procState
			for _, ps := range procs {
				if ps.nextIdx >= len(ps.ops) {
					continue
				}
				if ps.invoked {
					active = append(active, ps)
				} else {
					idle = append(idle, ps)
				}
			}
			if len(idle) == 0 && len(active) == 0 {
				break
			}

			if len(active) > 0 && (len(idle) == 0 || rng.Intn(2) == 0) {
				ps := active[rng.Intn(len(active))]
				lo := ps.ops[ps.nextIdx]
				switch lo.kind {
				case "write":
					s.push(ps.proc, op.Ok, "write", op.Txn(op.Write(key, lo.arg)))
					state, stateSet = lo.arg, true
				case "cas":
					if stateSet && state == ps.invokeValue {
						s.push(ps.proc, op.Ok, "cas", op.Txn(op.CAS(key, ps.invokeValue, lo.arg)))
						state = lo.arg
					} else {
						s.push(ps.proc, op.Fail, "cas", op.Txn(op.CAS(key, ps.invokeValue, lo.arg)))
					}
				default:
					if stateSet {
						s.push(ps.proc, op.Ok, "read", op.Txn(op.ReadResultScalar(key, state)))
					} else {
						s.push(ps.proc, op.Ok, "read", op.Txn(op.ReadResultNil(key)))
					}
				}
				ps.invoked = false
				ps.nextIdx++
				remaining--
				continue
			}

			ps := idle[rng.Intn(len(idle))]
			lo := ps.ops[ps.nextIdx]
			switch lo.kind {
			case "write":
				s.push(ps.proc, op.Invoke, "write", op.Txn(op.Write(key, lo.arg)))
			case "cas":
				ps.invokeValue = state
				s.push(ps.proc, op.Invoke, "cas", op.Txn(op.CAS(key, state, lo.arg)))
			default:
				s.push(ps.proc, op.Invoke, "read", op.Txn(op.Read(key)))
			}
			ps.invoked = true
		}
		return nil
	}
}
