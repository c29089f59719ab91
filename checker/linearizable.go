// File: linearizable.go
// Role: the X component's linearizability checker, wrapping linear.Search
// behind the Checker signature: normalizes info-typed reads per spec.md
// §4.5's performance rule, then searches for a legal interleaving against
// opts.Model.
package checker

import (
	"context"
	"fmt"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/linear"
)

// Linearizable checks h against opts.Model using Knossos-style search. It
// returns Result.Err (rather than a non-nil error) for a missing Model, so
// that Compose can degrade this one sub-checker to Unknown without aborting
// its siblings.
func Linearizable(ctx context.Context, h history.History, opts Options) (Result, error) {
	if opts.Model == nil {
		return Result{Valid: Unknown, Err: fmt.Errorf("checker: Linearizable requires Options.Model")}, nil
	}

	normalized := linear.NormalizeInfoReads(h)

	ok, cex, err := linear.Search(ctx, normalized, opts.Model)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Valid: Invalid, Counterexample: cex}, nil
	}
	return Result{Valid: Valid}, nil
}
