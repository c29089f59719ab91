// File: stats.go
// Role: Stats, a deterministic frequency summary derived purely from a
// witness list. Supplement to spec.md §4.4: real Jepsen's
// checker/anomaly.clj always reports both the full witness set and a
// summary for human skimming; additive, changes no invariant.
package anomaly

import "sort"

// severityOrder ranks kinds from worst to least severe for Stats.Worst;
// kinds not listed (MultipleWriters, CyclicVersions, IncompatibleOrder,
// Unrecognized) are considered least
// severe, since they never alone fail a model-based check the way a cycle
// does.
var severityOrder = []Kind{G2, GSingle, G1c, G0, RealtimeViolation, G1b, G1a, Internal}

// Stats summarizes a witness list for quick human skimming.
type Stats struct {
	Counts map[Kind]int
	Worst  Kind
	Total  int
}

// Summarize computes Stats over witnesses. Worst is the zero Kind if
// witnesses is empty.
func Summarize(witnesses []Witness) Stats {
	s := Stats{Counts: make(map[Kind]int)}
	for _, w := range witnesses {
		s.Counts[w.Kind]++
		s.Total++
	}
	for _, k := range severityOrder {
		if s.Counts[k] > 0 {
			s.Worst = k
			break
		}
	}
	if s.Worst == "" && len(s.Counts) > 0 {
		rest := make([]string, 0, len(s.Counts))
		for k := range s.Counts {
			rest = append(rest, string(k))
		}
		sort.Strings(rest)
		s.Worst = Kind(rest[0])
	}
	return s
}
