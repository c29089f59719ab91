package model

import (
	"fmt"

	"github.com/jepsenhq/chronos/op"
)

// CounterState is the accumulated total of a commutative counter.
type CounterState int64

func (CounterState) isState() {}

// Key implements State.
func (c CounterState) Key() string { return fmt.Sprintf("counter:%d", int64(c)) }

// Counter models an increment-only (or increment/decrement) counter where
// reads must observe the running total and adds are unconditional. Unlike
// CASRegister, reads never carry a nil placeholder: a counter starts at 0,
// never at an absent value.
type Counter struct{}

func (Counter) Name() string { return "counter" }

func (Counter) Init() State { return CounterState(0) }

func (Counter) Step(state State, m op.MicroOp) (State, error) {
	cnt, ok := state.(CounterState)
	if !ok {
		return nil, fmt.Errorf("%w: counter given non-counter state", ErrInconsistent)
	}
	switch m.Kind {
	case op.MicroRead:
		if !m.ReadKnown {
			return cnt, nil
		}
		if m.ReadNil {
			return nil, fmt.Errorf("%w: counter read nil, counters never start unset", ErrInconsistent)
		}
		if int64(cnt) != m.ReadScalar {
			return nil, fmt.Errorf("%w: read %d but counter is %d", ErrInconsistent, m.ReadScalar, int64(cnt))
		}
		return cnt, nil

	case op.MicroWrite:
		return CounterState(int64(cnt) + m.Arg), nil

	default:
		return nil, fmt.Errorf("%w: counter cannot apply %s", ErrInconsistent, m.Kind)
	}
}
