// File: invariants.go
// Role: structural invariant checks that indicate a malformed workload or
// generator rather than a database anomaly, spec.md §7 ("Exceptions are
// reserved for internal invariant violations... and must carry the
// offending operation's index"). Grounded on
// _examples/wyf-ACCEPT-eth2030/go.mod's github.com/cockroachdb/pebble
// dependency chain, which pulls in github.com/cockroachdb/errors; its
// errors.AssertionFailedf/errors.WithDetailf give exactly the structured,
// test-observable context-attachment spec.md §7 asks for, which plain
// fmt.Errorf wrapping does not (no way to attach structured detail without
// folding it into the message string).
package dependency

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// CheckInvariants validates every key index for structural violations that
// must never occur regardless of the consistency model under test. A
// violation here is returned as an error (not an anomaly.Witness): it means
// the workload or its generator is broken, not that the database under test
// misbehaved.
//
// Currently checked: duplicate appends of an identical value to the same
// key by more than one committed transaction. dependency's own list-append
// version-order construction (versionorder.go's listAppendEdges) assumes
// every appended element is unique; a duplicate silently corrupts that
// total order instead of merely producing a wrong verdict, so it is raised
// as a hard error instead.
func CheckInvariants(idx map[string]*KeyIndex) error {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ki := idx[key]
		values := make([]int64, 0, len(ki.AppendWriters))
		for v := range ki.AppendWriters {
			values = append(values, v)
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

		for _, v := range values {
			writers := ki.AppendWriters[v]
			if len(writers) <= 1 {
				continue
			}
			err := errors.AssertionFailedf("dependency: duplicate append of identical value to key %q", key)
			return errors.WithDetailf(err, "value=%d appended by ops %v", v, writers)
		}
	}
	return nil
}
