// File: models.go
// Role: named consistency models mapped to the version-order sources and
// anomalies they imply checking, present in real Jepsen's
// elle.consistency-model namespace but dropped by the distillation; without
// this table, dependency's optional vo sources are reachable only from a
// test that hand-assembles Options.
package dependency

// ConsistencyModel names a point in the session/snapshot/serializable
// hierarchy and the vo sources plus anomaly kinds it implies checking.
type ConsistencyModel struct {
	Name     string
	Options  []Option
	Anomalies []string
}

// Models maps a subset of the real Jepsen elle.consistency-model hierarchy
// relevant to the extractors this package builds.
var Models = map[string]ConsistencyModel{
	"read-committed": {
		Name:      "read-committed",
		Options:   nil,
		Anomalies: []string{"G0", "G1a", "G1b"},
	},
	"snapshot-isolation": {
		Name:      "snapshot-isolation",
		Options:   []Option{WithWritesFollowReads()},
		Anomalies: []string{"G0", "G1a", "G1b", "G1c", "G-single"},
	},
	"serializable": {
		Name:      "serializable",
		Options:   []Option{WithWritesFollowReads(), WithSequentialKeys()},
		Anomalies: []string{"G0", "G1a", "G1b", "G1c", "G-single", "G2"},
	},
	"strong-serializable": {
		Name:      "strong-serializable",
		Options:   []Option{WithWritesFollowReads(), WithSequentialKeys(), WithLinearizableKeys()},
		Anomalies: []string{"G0", "G1a", "G1b", "G1c", "G-single", "G2"},
	},
}

// ModelOptions resolves a named consistency model to the Options used to
// build its version order. The zero Options value (no optional sources) is
// returned for an unrecognized name.
func ModelOptions(name string) Options {
	if m, ok := Models[name]; ok {
		return NewOptions(m.Options...)
	}
	return Options{}
}
