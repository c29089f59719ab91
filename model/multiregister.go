package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jepsenhq/chronos/op"
)

// MultiRegisterState holds one Register per key, addressed directly by
// op.MicroOp.Key — the field already carries whichever sub-register a
// micro-op targets, so no new addressing type is needed.
type MultiRegisterState map[string]Register

func (MultiRegisterState) isState() {}

// Key implements State, encoding sub-registers in sorted key order so that
// two maps with the same contents always produce the same string.
func (m MultiRegisterState) Key() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("multiregister:")
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%s", k, m[k].Key())
	}
	return b.String()
}

func (m MultiRegisterState) with(key string, r Register) MultiRegisterState {
	out := make(MultiRegisterState, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = r
	return out
}

// MultiRegister models a transaction touching several independently-keyed
// CAS registers, delegating each micro-op to CASRegister's transition logic
// against that key's sub-register.
type MultiRegister struct{}

func (MultiRegister) Name() string { return "multi-register" }

func (MultiRegister) Init() State { return MultiRegisterState{} }

func (MultiRegister) Step(state State, m op.MicroOp) (State, error) {
	mr, ok := state.(MultiRegisterState)
	if !ok {
		return nil, fmt.Errorf("%w: multi-register given non-multi-register state", ErrInconsistent)
	}
	next, err := (CASRegister{}).Step(mr[m.Key], m)
	if err != nil {
		return nil, fmt.Errorf("%w (key %s)", err, m.Key)
	}
	return mr.with(m.Key, next.(Register)), nil
}
