package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jepsenhq/chronos/op"
)

// SetState is the set of elements added so far, held sorted so that Key
// produces a canonical encoding independent of insertion order.
type SetState []int64

func (SetState) isState() {}

// Key implements State.
func (s SetState) Key() string {
	var b strings.Builder
	b.WriteString("set:")
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

func (s SetState) contains(v int64) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	return i < len(s) && s[i] == v
}

func (s SetState) inserted(v int64) SetState {
	out := make(SetState, len(s), len(s)+1)
	copy(out, s)
	i := sort.Search(len(out), func(i int) bool { return out[i] >= v })
	out = append(out, 0)
	copy(out[i+1:], out[i:])
	out[i] = v
	return out
}

// Set models an add-only set: add(e) is idempotent, and read must observe
// exactly the current membership.
type Set struct{}

func (Set) Name() string { return "set" }

func (Set) Init() State { return SetState(nil) }

func (Set) Step(state State, m op.MicroOp) (State, error) {
	s, ok := state.(SetState)
	if !ok {
		return nil, fmt.Errorf("%w: set given non-set state", ErrInconsistent)
	}
	switch m.Kind {
	case op.MicroAppend: // add
		if s.contains(m.Arg) {
			return s, nil
		}
		return s.inserted(m.Arg), nil

	case op.MicroRead:
		if !m.ReadKnown {
			return s, nil
		}
		if !m.IsList {
			return nil, fmt.Errorf("%w: set read must be a list", ErrInconsistent)
		}
		got := append([]int64(nil), m.ReadList...)
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		if len(got) != len(s) {
			return nil, fmt.Errorf("%w: read %v but set has %d elements", ErrInconsistent, got, len(s))
		}
		for i := range got {
			if got[i] != s[i] {
				return nil, fmt.Errorf("%w: read %v but set is %v", ErrInconsistent, got, []int64(s))
			}
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: set cannot apply %s", ErrInconsistent, m.Kind)
	}
}
