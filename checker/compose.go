// File: compose.go
// Role: runs a named set of Checkers in parallel with a shared deadline and
// merges their Results, spec.md §4.7. Grounded on
// golang.org/x/sync/errgroup's WithContext fan-out shape
// (_examples/AKJUS-bsc-erigon/go.mod's golang.org/x/sync dependency) with
// one deliberate divergence from naive errgroup use, documented below and
// in DESIGN.md: a sub-checker's error must degrade the composed verdict to
// Unknown (spec.md §7 "sub-checker failures ... do not abort sibling
// sub-checkers"), not cancel the group the way returning the error from the
// errgroup func would.
package checker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/telemetry"
)

// Compose runs every named Checker in checkers concurrently against the
// same h and opts, sharing opts.Deadline, and merges their Results: Valid
// is the conjunction per Verdict.And, SubResults holds one entry per name.
//
// Each call is assigned a fresh RunID (github.com/google/uuid, grounded on
// _examples/AKJUS-bsc-erigon/go.mod's dependency on the same library for
// opaque correlation identifiers) so that the start/stop/timeout/error log
// lines every sub-checker emits can be grouped back to the Compose
// invocation that produced them, and so store.WriteRun's results.json
// carries a stable handle for one test run distinct from the filesystem
// path it was written under.
func Compose(checkers map[string]Checker) Checker {
	return func(ctx context.Context, h history.History, opts Options) (Result, error) {
		if opts.Deadline > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.Deadline)
			defer cancel()
		}

		runID := uuid.New().String()
		log := opts.logger()
		telemetry.ComposeStart(log, runID, len(checkers))
		g, gctx := errgroup.WithContext(ctx)

		var mu sync.Mutex
		results := make(map[string]Result, len(checkers))

		for name, sub := range checkers {
			name, sub := name, sub
			g.Go(func() error {
				telemetry.CheckerStart(log, name)
				r, err := sub(gctx, h, opts)
				switch {
				case err != nil && gctx.Err() != nil:
					r = Result{Valid: Unknown, Timeout: true}
					telemetry.CheckerTimeout(log, name)
				case err != nil:
					r = Result{Valid: Unknown, Err: err}
					telemetry.CheckerError(log, name, err)
				default:
					telemetry.CheckerStop(log, name, r.Valid == Valid)
				}
				mu.Lock()
				results[name] = r
				mu.Unlock()
				// Never return err here: per spec.md §7 a sub-checker's
				// failure degrades its own Result to Unknown but must not
				// cancel its siblings via errgroup's first-error
				// cancellation (the deliberate divergence this file's
				// doc comment records).
				return nil
			})
		}

		_ = g.Wait() // always nil: every goroutine above returns nil

		verdict := Valid
		for _, r := range results {
			verdict = verdict.And(r.Valid)
		}

		telemetry.ComposeStop(log, runID, verdict == Valid)
		return Result{Valid: verdict, RunID: runID, SubResults: results}, nil
	}
}
