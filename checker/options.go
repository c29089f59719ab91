package checker

import (
	"time"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/dependency"
	"github.com/jepsenhq/chronos/model"
	"github.com/jepsenhq/chronos/telemetry"
)

// Options configures one Checker invocation (leaf or composed).
type Options struct {
	// VersionOrder controls which optional version-order sources the
	// transactional checker uses (spec.md §4.3.2 items 2-4).
	VersionOrder dependency.Options

	// Wanted names the anomaly kinds to report; it is expanded via
	// anomaly.Expand before use, so requesting G2 also checks G-single and
	// G1c (spec.md §4.4 "anomaly expansion"). A nil slice requests every
	// kind the transactional checker knows how to detect.
	Wanted []anomaly.Kind

	// Model is the abstract state machine Linearizable checks against. It
	// is ignored by Transactional.
	Model model.Model

	// Deadline bounds a single Compose call; zero means no deadline.
	Deadline time.Duration

	// Logger receives start/stop/timeout/error events; nil uses
	// telemetry.Default.
	Logger *telemetry.Logger
}

func (o Options) logger() *telemetry.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return telemetry.Default
}

// wantedKinds resolves Wanted to its expansion closure, or every known kind
// if Wanted is empty.
func (o Options) wantedKinds() map[anomaly.Kind]bool {
	kinds := o.Wanted
	if len(kinds) == 0 {
		kinds = []anomaly.Kind{anomaly.G2, anomaly.G1c, anomaly.RealtimeViolation, Kind("G1"), anomaly.Internal}
	}
	out := make(map[anomaly.Kind]bool)
	for _, k := range anomaly.Expand(kinds) {
		out[k] = true
	}
	return out
}

// Kind is a convenience alias so Options literals can name "G1" (the
// spec.md §4.4 shorthand for {G1a, G1b, G1c}) without importing anomaly
// directly for that one synthetic value.
func Kind(s string) anomaly.Kind { return anomaly.Kind(s) }
