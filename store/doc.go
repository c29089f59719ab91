// Package store writes one test run's persisted state layout (spec.md §6):
// the canonical history, the verdict tree, and one text file per anomaly
// witness. It has no teacher analog (lvlath never writes to disk); layout
// and naming follow spec.md §6 directly, with one documented rename
// (results.json rather than results.edn, since no EDN library exists
// anywhere in the retrieval pack and EDN is not idiomatic Go).
package store
