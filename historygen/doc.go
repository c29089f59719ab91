// Package historygen builds deterministic synthetic histories for testing
// checkers, grounded on the teacher's BuildGraph orchestrator (builder
// package: one entry point resolves functional options into a config, then
// applies constructors in order against a mutable accumulator). Here the
// accumulator is a flat op.Operation sequence rather than a *core.Graph, and
// constructors append invoke/completion pairs instead of vertices and edges,
// but the contract is the same: same constructors, same options, same
// clock seed ⇒ byte-identical history.History.
//
// Canonical scenarios (scenarios.go) reproduce the fixed op sequences of
// spec.md §8 exactly, each as a single Constructor. RandomCASRegister
// (random.go) generalizes the idiom to seeded-*rand.Rand fuzzing of
// concurrent CAS-register histories, in the spirit of builder's
// WithSeed-driven RandomSparse/RandomRegular topology generators.
package historygen
