// Package history indexes a raw slice of operations into an immutable,
// totally-ordered History, pairs each invocation with its completion, and
// provides the filters and sanity checks the rest of Chronos builds on.
//
// Mirrors the teacher's core package in spirit: a small set of constructors
// and read-only accessors, no hidden mutable state, deterministic iteration
// (see core/api.go, core/methods_vertices.go for the idiom this follows).
package history
