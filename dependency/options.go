// File: options.go
// Role: functional options controlling which optional version-order
// sources participate, grounded on core.GraphOption/dijkstra.Option's
// functional-option shape in the teacher.
package dependency

// Options configures the optional version-order sources used when building
// the ww/rw graph (spec.md §4.3.2 items 2-4 are all optional; item 1,
// initial state, and item 5, list-append evidence, always participate when
// applicable data exists).
type Options struct {
	writesFollowReads bool
	sequentialKeys    bool
	linearizableKeys  bool
}

// Option mutates an Options value.
type Option func(*Options)

// WithWritesFollowReads enables version-order source (2): within a single
// successful transaction reading k=v1 then writing v2 to k, infer v1->v2.
func WithWritesFollowReads() Option {
	return func(o *Options) { o.writesFollowReads = true }
}

// WithSequentialKeys enables version-order source (3): the process-order
// induced on transactions touching k yields vo edges from one transaction's
// final value to its process-successor's first value.
func WithSequentialKeys() Option {
	return func(o *Options) { o.sequentialKeys = true }
}

// WithLinearizableKeys enables version-order source (4): the same
// construction as WithSequentialKeys but over the realtime order rather
// than per-process order.
func WithLinearizableKeys() Option {
	return func(o *Options) { o.linearizableKeys = true }
}

// NewOptions builds an Options from the given functional options, all
// optional sources disabled by default.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, f := range opts {
		f(&o)
	}
	return o
}
