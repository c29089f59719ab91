package model

import (
	"fmt"

	"github.com/jepsenhq/chronos/op"
)

// Register is the state of a single CAS register: either unset (the "nil"
// initial state of spec.md §4.6) or holding a value.
type Register struct {
	V   int64
	Set bool
}

func (Register) isState() {}

// Key implements State.
func (r Register) Key() string {
	if !r.Set {
		return "register:nil"
	}
	return fmt.Sprintf("register:%d", r.V)
}

// CASRegister is the Model for a compare-and-set register: reads must
// observe the current value (or nil, before any write has landed), writes
// set the value unconditionally, and CAS only succeeds when the register
// currently holds the expected old value.
type CASRegister struct{}

func (CASRegister) Name() string { return "cas-register" }

func (CASRegister) Init() State { return Register{} }

func (CASRegister) Step(state State, m op.MicroOp) (State, error) {
	reg, ok := state.(Register)
	if !ok {
		return nil, fmt.Errorf("%w: cas-register given non-register state", ErrInconsistent)
	}
	switch m.Kind {
	case op.MicroRead:
		if !m.ReadKnown {
			// Invoke-time placeholder; no transition.
			return reg, nil
		}
		if m.ReadNil {
			if reg.Set {
				return nil, fmt.Errorf("%w: read nil but register holds %d", ErrInconsistent, reg.V)
			}
			return reg, nil
		}
		if !reg.Set || reg.V != m.ReadScalar {
			return nil, fmt.Errorf("%w: read %d but register is %s", ErrInconsistent, m.ReadScalar, reg.Key())
		}
		return reg, nil

	case op.MicroWrite:
		return Register{V: m.Arg, Set: true}, nil

	case op.MicroCAS:
		if !reg.Set {
			if m.CASOld != 0 {
				return nil, fmt.Errorf("%w: cas(%d,%d) against nil register", ErrInconsistent, m.CASOld, m.CASNew)
			}
			return nil, fmt.Errorf("%w: cas against nil register is ambiguous, treated as a failed precondition", ErrInconsistent)
		}
		if reg.V != m.CASOld {
			return nil, fmt.Errorf("%w: cas expected %d but register is %d", ErrInconsistent, m.CASOld, reg.V)
		}
		return Register{V: m.CASNew, Set: true}, nil

	default:
		return nil, fmt.Errorf("%w: cas-register cannot apply %s", ErrInconsistent, m.Kind)
	}
}
