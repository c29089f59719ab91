// Package model implements the pure abstract state machines that package
// linear searches against: a CAS register, a counter, a set, a mutex, and a
// multi-register. Each is a tagged-union State plus a single pure Step
// method, grounded on the teacher's sentinel-error-with-context idiom
// (dfs.ErrCycleDetected wrapped via fmt.Errorf("...%w", id, err) in
// dfs/dfs.go) generalized to a single ErrInconsistent sentinel that every
// model wraps with a human-readable reason, per spec.md §4.6's requirement
// that Step return a sentinel value rather than panic or throw.
package model
