package model

import (
	"errors"

	"github.com/jepsenhq/chronos/op"
)

// ErrInconsistent is wrapped with a reason by every Model.Step that detects
// a micro-op the current state cannot have produced. Package linear treats
// any error returned from Step as "this transition is impossible," not as a
// fatal failure — only the wrapping matters for witness text.
var ErrInconsistent = errors.New("model: inconsistent transition")

// State is an immutable snapshot of an abstract state machine. Key returns a
// canonical string encoding suitable for use as a map key, so package linear
// can memoize visited (pending-set, state) pairs without requiring States to
// be Go-comparable (a SetState, for instance, is backed by a slice).
type State interface {
	isState()
	Key() string
}

// Model is a single-register (or single-object) abstract state machine: the
// unit that package linear's search steps one micro-op at a time. Init
// returns the object's state before any operation is applied; Step attempts
// to apply one micro-op and either returns the resulting state or an error
// wrapping ErrInconsistent.
type Model interface {
	// Name identifies the model in witness text and logs, e.g. "cas-register".
	Name() string
	// Init returns the state before any operation has been applied.
	Init() State
	// Step applies m to state, returning the next state, or an error
	// wrapping ErrInconsistent if m could not have been produced from state.
	Step(state State, m op.MicroOp) (State, error)
}
