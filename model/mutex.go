package model

import (
	"fmt"

	"github.com/jepsenhq/chronos/op"
)

// MutexState is true when the mutex is held.
type MutexState bool

func (MutexState) isState() {}

// Key implements State.
func (m MutexState) Key() string {
	if m {
		return "mutex:held"
	}
	return "mutex:free"
}

// Mutex models a binary lock. spec.md §4.6 leaves mutex semantics optional
// and unspecified beyond "acquire/release must alternate"; we represent
// acquire and release as writes (Arg==1 acquire, Arg==0 release) rather than
// inventing a new MicroOpKind, since histories already express every
// operation as read/write/append/cas and a mutex workload's client library
// would naturally emit a write of the desired lock state.
type Mutex struct{}

func (Mutex) Name() string { return "mutex" }

func (Mutex) Init() State { return MutexState(false) }

func (Mutex) Step(state State, m op.MicroOp) (State, error) {
	held, ok := state.(MutexState)
	if !ok {
		return nil, fmt.Errorf("%w: mutex given non-mutex state", ErrInconsistent)
	}
	switch m.Kind {
	case op.MicroWrite:
		switch m.Arg {
		case 1:
			if held {
				return nil, fmt.Errorf("%w: acquire on already-held mutex", ErrInconsistent)
			}
			return MutexState(true), nil
		case 0:
			if !held {
				return nil, fmt.Errorf("%w: release on unheld mutex", ErrInconsistent)
			}
			return MutexState(false), nil
		default:
			return nil, fmt.Errorf("%w: mutex write must be 0 (release) or 1 (acquire), got %d", ErrInconsistent, m.Arg)
		}

	case op.MicroRead:
		if !m.ReadKnown {
			return held, nil
		}
		want := held
		gotHeld := !m.ReadNil && m.ReadScalar == 1
		if gotHeld != bool(want) {
			return nil, fmt.Errorf("%w: mutex read disagrees with held state", ErrInconsistent)
		}
		return held, nil

	default:
		return nil, fmt.Errorf("%w: mutex cannot apply %s", ErrInconsistent, m.Kind)
	}
}
