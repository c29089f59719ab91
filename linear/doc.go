// Package linear implements Knossos-style linearizability search (spec.md
// §4.5): given a single-object history and an abstract model.Model, decide
// whether some serialization of concurrently-pending operations is
// consistent with the model. The search is iterative over an explicit work
// stack rather than recursive, per spec.md §9's "avoid recursion to prevent
// deep stacks on long histories" — the one place this module departs from
// the teacher's own recursive-DFS style (dfs/dfs.go, dfs/cycle.go), because
// the spec explicitly calls for the deviation.
//
// Operations feeding this package carry exactly one op.MicroOp inside their
// TxnValue: a single-object history's "transaction" is one micro-op, the
// same Value shape package dependency consumes for multi-key transactions,
// just with a fixed arity of one.
package linear
