// File: options.go
// Role: functional options for BuildPaths, narrowed to what a
// criteria-bounded elementary-path build actually needs.
package pathbuilder

import "context"

// Options collects the resolved configuration for a single BuildPaths
// call.
type Options struct {
	Ctx context.Context
}

// Option configures a BuildPaths call.
type Option func(*Options)

// DefaultOptions returns the zero-value-safe default Options: a
// background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used to cooperatively cancel the build,
// checked at every recursive step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
