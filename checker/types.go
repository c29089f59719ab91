package checker

import (
	"context"
	"encoding/json"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/linear"
)

// Verdict is the three-valued outcome of a checker, spec.md §4.7: "top-level
// valid? is the conjunction, with unknown absorbing true but not false."
type Verdict string

const (
	Valid   Verdict = "true"
	Invalid Verdict = "false"
	Unknown Verdict = "unknown"
)

// And combines two verdicts per spec.md §4.7's absorption rule: Invalid
// dominates everything, Unknown absorbs Valid but not Invalid.
func (v Verdict) And(other Verdict) Verdict {
	switch {
	case v == Invalid || other == Invalid:
		return Invalid
	case v == Unknown || other == Unknown:
		return Unknown
	default:
		return Valid
	}
}

// Result is one checker's verdict plus the evidence behind it.
type Result struct {
	Valid Verdict

	// RunID correlates one Compose invocation's telemetry with its Result;
	// set only on the Result Compose itself returns (empty for leaf
	// checkers called directly, and for every entry in SubResults).
	RunID string

	// Anomalies is the witness list behind a non-Valid transactional
	// verdict; nil for a linearizability-only checker (see Counterexample).
	Anomalies []anomaly.Witness
	Stats     anomaly.Stats

	// Counterexample is set on a failed linearizability check.
	Counterexample *linear.Counterexample

	// Timeout marks a Result produced by the shared deadline firing before
	// the checker finished; Valid is always Unknown when Timeout is true.
	Timeout bool

	// Err records an internal invariant violation (spec.md §7), distinct
	// from a consistency anomaly: a checker that returns one always also
	// sets Valid to Unknown.
	Err error

	// SubResults holds one entry per composed checker, keyed by the name it
	// was registered under in Compose's input map. Nil for a leaf checker.
	SubResults map[string]Result
}

// resultJSON mirrors Result for marshaling, since error is not itself
// JSON-marshalable in any generally useful way (most error values carry
// only unexported fields).
type resultJSON struct {
	Valid          Verdict                `json:"valid"`
	RunID          string                 `json:"run_id,omitempty"`
	Anomalies      []anomaly.Witness      `json:"anomalies,omitempty"`
	Stats          anomaly.Stats          `json:"stats"`
	Counterexample *linear.Counterexample `json:"counterexample,omitempty"`
	Timeout        bool                   `json:"timeout,omitempty"`
	Err            string                 `json:"error,omitempty"`
	SubResults     map[string]Result      `json:"sub_results,omitempty"`
}

// MarshalJSON renders Err as its message string, store's results.json
// (spec.md §6) being the only consumer that needs Result on the wire.
func (r Result) MarshalJSON() ([]byte, error) {
	rj := resultJSON{
		Valid: r.Valid, RunID: r.RunID, Anomalies: r.Anomalies, Stats: r.Stats,
		Counterexample: r.Counterexample, Timeout: r.Timeout, SubResults: r.SubResults,
	}
	if r.Err != nil {
		rj.Err = r.Err.Error()
	}
	return json.Marshal(rj)
}

// Checker analyzes h under opts and returns a Result. Implementations must
// poll ctx.Done() at every loop iteration whose cost can exceed roughly a
// millisecond (spec.md §5's cancellation contract) and must never panic on
// a malformed history; internal invariant violations are reported via
// Result.Err instead.
type Checker func(ctx context.Context, h history.History, opts Options) (Result, error)
