package toksum

// Option adjusts how batch operations traverse and report.
type Option func(*options)

type options struct {
	skipUnsupported bool
	progress        func(path string)
}

// SkipUnsupported makes batch operations skip files whose byte encoding
// cannot be decoded instead of failing the whole batch.
func SkipUnsupported() Option {
	return func(o *options) {
		o.skipUnsupported = true
	}
}

// WithProgress registers a callback invoked once per file after it has been
// processed (or skipped). Batch operations call it sequentially.
func WithProgress(fn func(path string)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) advance(path string) {
	if o.progress != nil {
		o.progress(path)
	}
}
