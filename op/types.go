// File: types.go
// Role: Operation, Process, Type and the sentinel errors of package op.
// Determinism:
//   - Operation is a plain value; equality and iteration order are defined
//     entirely by Index, assigned externally by history.Index.
// Concurrency:
//   - Operation is immutable after construction; safe to share across
//     goroutines without synchronization.

package op

import (
	"errors"
	"fmt"
)

// Sentinel errors for package op.
var (
	// ErrNegativeIndex indicates an Operation was constructed with Index < 0.
	ErrNegativeIndex = errors.New("op: negative index")

	// ErrUnknownType indicates a Type value outside {Invoke, Ok, Fail, Info}.
	ErrUnknownType = errors.New("op: unknown operation type")

	// ErrBadProcess indicates a Process that is neither a nonnegative client
	// id nor the Nemesis sentinel.
	ErrBadProcess = errors.New("op: bad process")
)

// Type classifies an Operation's completion status.
type Type string

// The four operation types of the Jepsen history model (spec.md §3).
const (
	Invoke Type = "invoke"
	Ok     Type = "ok"
	Fail   Type = "fail"
	Info   Type = "info"
)

// Validate reports whether t is one of the four known types.
func (t Type) Validate() error {
	switch t {
	case Invoke, Ok, Fail, Info:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
}

// IsCompletion reports whether t is a completion (as opposed to Invoke).
func (t Type) IsCompletion() bool {
	return t == Ok || t == Fail || t == Info
}

// Process identifies the logical actor that issued an Operation: either a
// nonnegative client id, or the nemesis sentinel. Using a small struct
// instead of a bare int keeps "client 0" and "nemesis" from ever being
// confused by a stray zero value.
type Process struct {
	id      int64
	nemesis bool
}

// Nemesis is the sentinel Process representing the fault-injection actor.
var Nemesis = Process{nemesis: true}

// ClientProcess returns the Process for client id n.
func ClientProcess(n int64) Process {
	return Process{id: n}
}

// IsNemesis reports whether p is the nemesis sentinel.
func (p Process) IsNemesis() bool { return p.nemesis }

// ID returns the client process id. Calling it on the nemesis sentinel
// returns 0; callers must check IsNemesis first.
func (p Process) ID() int64 { return p.id }

// String renders the process for logs and witness text.
func (p Process) String() string {
	if p.nemesis {
		return "nemesis"
	}
	return fmt.Sprintf("%d", p.id)
}

// Validate reports an error for malformed processes (negative client ids).
func (p Process) Validate() error {
	if !p.nemesis && p.id < 0 {
		return fmt.Errorf("%w: process id %d", ErrBadProcess, p.id)
	}
	return nil
}

// ErrorKind classifies the optional Operation.Error tag.
type ErrorKind string

const (
	// ErrorKindNone means no error was attached.
	ErrorKindNone ErrorKind = ""
	// ErrorKindTimeout means the client observed a timeout (the operation's
	// effect on the system is unknown).
	ErrorKindTimeout ErrorKind = "timeout"
	// ErrorKindConflict means the database definitively rejected the
	// operation (e.g. a failed CAS).
	ErrorKindConflict ErrorKind = "conflict"
	// ErrorKindUnknown is any other reported error.
	ErrorKindUnknown ErrorKind = "unknown"
)

// Operation is an immutable record of one client or nemesis action.
//
// Index is assigned by history.Index and is dense from 0. Time is monotonic
// nanoseconds since test start. Process identifies the issuing actor. Type
// classifies completion status. F names the operation kind (domain-specific,
// e.g. "read", "write", "cas", "txn"). Value carries the payload. Error, if
// non-empty, tags a completion with a reason.
type Operation struct {
	Index   int
	Time    int64
	Process Process
	Type    Type
	F       string
	Value   Value
	Error   ErrorKind
}

// Validate checks the Operation's own fields for internal well-formedness.
// It does not check cross-operation invariants (pairing, total order); see
// history.AssertTypeSanity for those.
func (o Operation) Validate() error {
	if o.Index < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndex, o.Index)
	}
	if err := o.Type.Validate(); err != nil {
		return fmt.Errorf("op %d: %w", o.Index, err)
	}
	if err := o.Process.Validate(); err != nil {
		return fmt.Errorf("op %d: %w", o.Index, err)
	}
	return nil
}
