// Package dgraph implements the dependency-graph kernel: a directed
// multigraph over operation indices whose edges carry a bitmask of typed
// relations (ww, wr, rw, process, realtime, per-key, initial-state, wfr).
//
// It is grounded on core.Graph (_examples/katalvlaran-lvlath/core): the same
// separate-lock, linear-builder-then-frozen lifecycle, the same
// deterministic sorted iteration discipline, and the same non-mutating
// "view" idiom for derived graphs (core/view.go's UnweightedView /
// InducedSubgraph become UnlinkRel / ProjectRel / Collapse here). Multiple
// relations between the same ordered pair of vertices collapse into one
// edge with a union-valued bitmask label, per spec.md §9's "tagged-variant
// edges" design note — this is the one structural departure from the
// teacher, which models edges as individually addressable structs with a
// single Directed bool rather than a label bitmask.
package dgraph
