// File: types.go
// Role: the JSON-facing mirror of op.Operation/op.Value/op.MicroOp. op's
// types are closed interfaces with unexported marker methods (isValue),
// deliberately so nothing outside op can construct an invalid Value; wire's
// job is exactly the boundary where that closed shape must cross into an
// open, versioned wire format, so a parallel set of unexported structs with
// exported, tagged fields lives here rather than adding JSON tags to op itself.
package wire

import "github.com/jepsenhq/chronos/op"

// wireOp is the exact on-wire shape of one op.Operation.
type wireOp struct {
	Index   int         `json:"index"`
	Time    int64       `json:"time"`
	Process wireProcess `json:"process"`
	Type    string      `json:"type"`
	F       string      `json:"f,omitempty"`
	Value   wireValue   `json:"value"`
	Error   string      `json:"error,omitempty"`
}

type wireProcess struct {
	ID      int64 `json:"id"`
	Nemesis bool  `json:"nemesis,omitempty"`
}

func toWireProcess(p op.Process) wireProcess {
	if p.IsNemesis() {
		return wireProcess{Nemesis: true}
	}
	return wireProcess{ID: p.ID()}
}

func (p wireProcess) toOp() op.Process {
	if p.Nemesis {
		return op.Nemesis
	}
	return op.ClientProcess(p.ID)
}

// wireValue carries either a scalar or a transaction, discriminated by
// Kind; exactly one of Scalar/Txn is set.
type wireValue struct {
	Kind   string        `json:"kind"`
	Scalar *wireScalar   `json:"scalar,omitempty"`
	Txn    []wireMicroOp `json:"txn,omitempty"`
}

type wireScalar struct {
	V       int64 `json:"v"`
	Present bool  `json:"present"`
}

type wireMicroOp struct {
	Kind       string  `json:"kind"`
	Key        string  `json:"key"`
	Arg        int64   `json:"arg,omitempty"`
	CASOld     int64   `json:"cas_old,omitempty"`
	CASNew     int64   `json:"cas_new,omitempty"`
	ReadKnown  bool    `json:"read_known,omitempty"`
	ReadList   []int64 `json:"read_list,omitempty"`
	ReadScalar int64   `json:"read_scalar,omitempty"`
	IsList     bool    `json:"is_list,omitempty"`
	ReadNil    bool    `json:"read_nil,omitempty"`
}

func toWireMicroOp(m op.MicroOp) wireMicroOp {
	return wireMicroOp{
		Kind: string(m.Kind), Key: m.Key, Arg: m.Arg,
		CASOld: m.CASOld, CASNew: m.CASNew,
		ReadKnown: m.ReadKnown, ReadList: m.ReadList, ReadScalar: m.ReadScalar,
		IsList: m.IsList, ReadNil: m.ReadNil,
	}
}

func (m wireMicroOp) toOp() op.MicroOp {
	return op.MicroOp{
		Kind: op.MicroOpKind(m.Kind), Key: m.Key, Arg: m.Arg,
		CASOld: m.CASOld, CASNew: m.CASNew,
		ReadKnown: m.ReadKnown, ReadList: m.ReadList, ReadScalar: m.ReadScalar,
		IsList: m.IsList, ReadNil: m.ReadNil,
	}
}

func toWireValue(v op.Value) wireValue {
	switch vv := v.(type) {
	case op.ScalarValue:
		return wireValue{Kind: "scalar", Scalar: &wireScalar{V: vv.V, Present: vv.Present}}
	case op.TxnValue:
		ops := make([]wireMicroOp, len(vv.Ops))
		for i, m := range vv.Ops {
			ops[i] = toWireMicroOp(m)
		}
		return wireValue{Kind: "txn", Txn: ops}
	default:
		return wireValue{Kind: "unknown"}
	}
}

func (v wireValue) toOp() op.Value {
	switch v.Kind {
	case "scalar":
		if v.Scalar == nil {
			return op.ScalarValue{}
		}
		return op.ScalarValue{V: v.Scalar.V, Present: v.Scalar.Present}
	case "txn":
		ops := make([]op.MicroOp, len(v.Txn))
		for i, m := range v.Txn {
			ops[i] = m.toOp()
		}
		return op.TxnValue{Ops: ops}
	default:
		return nil
	}
}

func toWireOp(o op.Operation) wireOp {
	return wireOp{
		Index: o.Index, Time: o.Time, Process: toWireProcess(o.Process),
		Type: string(o.Type), F: o.F, Value: toWireValue(o.Value), Error: string(o.Error),
	}
}

func (w wireOp) toOp() op.Operation {
	return op.Operation{
		Index: w.Index, Time: w.Time, Process: w.Process.toOp(),
		Type: op.Type(w.Type), F: w.F, Value: w.Value.toOp(), Error: op.ErrorKind(w.Error),
	}
}
