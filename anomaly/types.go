package anomaly

// Kind names a point in the Adya/Cerone consistency-anomaly taxonomy.
type Kind string

const (
	G0                Kind = "G0"
	G1a               Kind = "G1a"
	G1b               Kind = "G1b"
	G1c               Kind = "G1c"
	GSingle           Kind = "G-single"
	G2                Kind = "G2"
	RealtimeViolation Kind = "realtime-violation"
	Internal          Kind = "internal-consistency"
	MultipleWriters   Kind = "multiple-writers"
	CyclicVersions    Kind = "cyclic-versions"
	IncompatibleOrder Kind = "incompatible-order"
	Unrecognized      Kind = "unrecognized-cycle"
)

// Witness is one concrete piece of evidence for a Kind: for cycle-based
// kinds (G0, G1c, G-single, G2, RealtimeViolation), Cycle holds the closed
// op-index sequence; for the non-cycle kinds (G1a, G1b, Internal, and the
// three version-order/writer anomalies), the scalar fields describe the
// single violating observation.
type Witness struct {
	Kind  Kind
	Cycle []int

	Key     string
	Value   int64
	OpIndex int
	Writer  int
	Other   int
}
