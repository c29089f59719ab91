// Package checker composes the transactional (dependency/anomaly) and
// linearizability (linear) analyses behind one Checker function type and
// runs a named set of them in parallel with a shared deadline, merging
// their verdicts per spec.md §4.7. Composition itself has no teacher
// analog (lvlath has no notion of "run several algorithms and merge
// verdicts"); it is grounded on golang.org/x/sync/errgroup, the same
// fan-out-with-shared-context library already present in the retrieval
// pack's dependency surface.
package checker
