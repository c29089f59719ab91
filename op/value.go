// File: value.go
// Role: the Value sum type (ScalarValue | TxnValue) and the MicroOp tagged
// union used inside transactional values.
// AI-HINT (file):
//   - Value is a closed interface with an unexported marker method, the same
//     pattern model.State uses for abstract-model states.
//   - MicroOp.Kind determines which of Arg, CASOld/CASNew and the Read*
//     fields is meaningful; the fields are read directly (there are no
//     accessor methods), and a field that does not apply to the Kind holds
//     its zero value.

package op

import "fmt"

// Value is the payload carried by an Operation: either a bare scalar
// (register/counter/set workloads) or an ordered transaction of MicroOps
// (list-append / multi-key workloads).
type Value interface {
	isValue()
}

// ScalarValue wraps a single value, e.g. the argument to a counter "add" or
// the result of a register "read".
type ScalarValue struct {
	V int64
	// Present distinguishes a real scalar from a read that has not yet
	// completed (an invoke's placeholder).
	Present bool
}

func (ScalarValue) isValue() {}

// Scalar constructs a present ScalarValue.
func Scalar(v int64) ScalarValue { return ScalarValue{V: v, Present: true} }

// TxnValue is an ordered sequence of micro-operations executed as one
// transaction.
type TxnValue struct {
	Ops []MicroOp
}

func (TxnValue) isValue() {}

// MicroOpKind distinguishes the shape of a MicroOp.
type MicroOpKind string

const (
	MicroRead   MicroOpKind = "r"
	MicroWrite  MicroOpKind = "w"
	MicroAppend MicroOpKind = "append"
	MicroCAS    MicroOpKind = "cas"
)

// MicroOp is one [f key arg] triple inside a TxnValue.
//
//   - [:r k v]        — Kind=MicroRead, Key=k, ReadList/ReadScalar holds v
//   - [:w k v]        — Kind=MicroWrite, Key=k, Arg=v
//   - [:append k e]   — Kind=MicroAppend, Key=k, Arg=e
//   - [:cas k [a b]]  — Kind=MicroCAS, Key=k, CASOld=a, CASNew=b
//
// On invocation, read results are absent (ReadKnown=false); on completion
// they are filled in.
type MicroOp struct {
	Kind MicroOpKind
	Key  string

	// Write/Append argument.
	Arg int64

	// CAS old/new values.
	CASOld int64
	CASNew int64

	// Read result: either a scalar (register workloads) or an ordered list
	// (list-append workloads). ReadKnown is false for an invoke placeholder
	// or an info completion whose read outcome is unobserved.
	ReadKnown  bool
	ReadList   []int64
	ReadScalar int64
	IsList     bool
	// ReadNil marks a scalar read that observed no value yet (the initial
	// "nil" register state of spec.md §4.6).
	ReadNil bool
}

// Read constructs an unresolved read micro-op (invoke placeholder).
func Read(key string) MicroOp { return MicroOp{Kind: MicroRead, Key: key} }

// ReadResultList constructs a completed list-valued read.
func ReadResultList(key string, vs []int64) MicroOp {
	return MicroOp{Kind: MicroRead, Key: key, ReadKnown: true, IsList: true, ReadList: vs}
}

// ReadResultScalar constructs a completed scalar-valued read.
func ReadResultScalar(key string, v int64) MicroOp {
	return MicroOp{Kind: MicroRead, Key: key, ReadKnown: true, ReadScalar: v}
}

// ReadResultNil constructs a completed read that observed no value (the
// register's initial "nil" state).
func ReadResultNil(key string) MicroOp {
	return MicroOp{Kind: MicroRead, Key: key, ReadKnown: true, ReadNil: true}
}

// Write constructs a scalar write micro-op.
func Write(key string, v int64) MicroOp { return MicroOp{Kind: MicroWrite, Key: key, Arg: v} }

// Append constructs a list-append micro-op.
func Append(key string, e int64) MicroOp { return MicroOp{Kind: MicroAppend, Key: key, Arg: e} }

// CAS constructs a compare-and-set micro-op.
func CAS(key string, old, new_ int64) MicroOp {
	return MicroOp{Kind: MicroCAS, Key: key, CASOld: old, CASNew: new_}
}

// String renders a micro-op for witness text and logs.
func (m MicroOp) String() string {
	switch m.Kind {
	case MicroRead:
		if !m.ReadKnown {
			return fmt.Sprintf("r(%s)=?", m.Key)
		}
		if m.ReadNil {
			return fmt.Sprintf("r(%s)=nil", m.Key)
		}
		if m.IsList {
			return fmt.Sprintf("r(%s)=%v", m.Key, m.ReadList)
		}
		return fmt.Sprintf("r(%s)=%d", m.Key, m.ReadScalar)
	case MicroWrite:
		return fmt.Sprintf("w(%s,%d)", m.Key, m.Arg)
	case MicroAppend:
		return fmt.Sprintf("append(%s,%d)", m.Key, m.Arg)
	case MicroCAS:
		return fmt.Sprintf("cas(%s,%d,%d)", m.Key, m.CASOld, m.CASNew)
	default:
		return fmt.Sprintf("?(%s)", m.Kind)
	}
}

// Txn constructs a TxnValue from a sequence of micro-ops.
func Txn(ops ...MicroOp) TxnValue { return TxnValue{Ops: ops} }
