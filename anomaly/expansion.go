// File: expansion.go
// Role: anomaly expansion (requesting a kind implies checking others) and
// subsumption (reporting only the most specific of a subsuming/subsumed
// pair found on the same cycle), spec.md §4.4 and §8 property 3.
package anomaly

// expands maps a requested Kind to the additional kinds it implies
// checking.
var expands = map[Kind][]Kind{
	G2:  {GSingle, G1c},
	GSingle: {G1c},
	Kind("G1"): {G1a, G1b, G1c},
	G1c: {G0},
}

// Expand returns the closure of kinds implied by requesting each of wanted,
// including wanted itself, deduplicated, in a deterministic order.
func Expand(wanted []Kind) []Kind {
	seen := make(map[Kind]bool)
	var order []Kind
	var visit func(k Kind)
	visit = func(k Kind) {
		if seen[k] {
			return
		}
		seen[k] = true
		order = append(order, k)
		for _, child := range expands[k] {
			visit(child)
		}
	}
	for _, k := range wanted {
		visit(k)
	}
	return order
}

// generalizes[a] = b records that a is a strictly more general (less
// specific) anomaly than b: every history violating b also violates a
// (spec.md §8 property 3: "G0 ⊂ G1c ⊂ G1; G-single ⊂ G2").
var generalizes = map[Kind]Kind{
	G2:  GSingle,
	G1c: G0,
}

// reaches reports whether walking the generalizes chain from general
// arrives at specific.
func reaches(general, specific Kind) bool {
	for cur := general; ; {
		next, ok := generalizes[cur]
		if !ok {
			return false
		}
		if next == specific {
			return true
		}
		cur = next
	}
}

// MostSpecific filters a set of kinds classifying the same cycle down to
// the ones that are not themselves a more-general anomaly already implied
// by a more specific one present in the same set (spec.md §8 "whenever the
// checker reports both a subsuming and a subsumed anomaly from the same
// cycle, it emits only the most specific").
func MostSpecific(kinds []Kind) []Kind {
	var out []Kind
	for _, k := range kinds {
		redundant := false
		for _, other := range kinds {
			if other != k && reaches(k, other) {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, k)
		}
	}
	return out
}
