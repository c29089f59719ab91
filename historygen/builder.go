// File: builder.go
// Role: Build, the single orchestrator (the accumulator-based analogue of
// the teacher's builder.BuildGraph: resolve options, run constructors in
// order, wrap the first failure at the API boundary).
package historygen

import (
	"errors"
	"fmt"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// ErrNilConstructor is returned by Build when one of cons is nil.
var ErrNilConstructor = errors.New("historygen: nil constructor")

// scratch accumulates operations in append order; Build converts it to a
// history.History via history.Index once every constructor has run.
type scratch struct {
	ops []op.Operation
}

// push appends one operation, its Index left for history.Index to assign.
func (s *scratch) push(p op.Process, typ op.Type, f string, v op.Value) {
	s.ops = append(s.ops, op.Operation{Process: p, Type: typ, F: f, Value: v})
}

// Constructor appends operations to the in-progress history. Constructors
// MUST append in the exact order their ops should appear, since Build
// assigns indices by append order alone.
type Constructor func(s *scratch, cfg *config) error

// Build resolves opts into a config, then applies each constructor in
// order, and returns the resulting indexed history.History. A nil
// constructor or a constructor error aborts immediately; no partial
// history is returned.
func Build(opts []Option, cons ...Constructor) (history.History, error) {
	cfg := newConfig(opts...)
	s := &scratch{}
	for i, fn := range cons {
		if fn == nil {
			return history.History{}, fmt.Errorf("historygen: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(s, cfg); err != nil {
			return history.History{}, fmt.Errorf("historygen: %w", err)
		}
	}
	return history.Index(s.ops), nil
}
