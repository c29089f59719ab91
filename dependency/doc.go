// Package dependency builds the typed dependency graphs package anomaly
// searches for cycles in: write-read (wr), write-write/read-write (ww, rw)
// derived from a per-key version order, process order, realtime order, and
// a per-key monotonic-counter graph. Each extractor consumes a
// history.History and/or the per-key index IndexKeys builds from it, and
// returns a *dgraph.Graph; the version order step, the only one that takes
// an Options, returns an intermediate per-key order subject to conflict
// detection before it is turned into ww/rw edges.
//
// Only transactional operations (op.TxnValue payloads) participate: the
// dependency graph is elle's per-key-transaction model, not a register's
// single-object timeline, which package linear checks instead.
package dependency
