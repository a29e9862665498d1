package graphdata

type options struct {
	logger     *Logger
	sequential bool
}

// Option configures store construction behavior.
type Option func(*options)

// WithLogger configures the logger used during construction.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSequentialBuild disables the concurrent per-type adjacency build
// in NewEdgeStore. Per-type builds are independent, so this only
// matters for callers that need single-threaded construction (e.g.
// deterministic profiling).
func WithSequentialBuild() Option {
	return func(o *options) {
		o.sequential = true
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
