// SPDX-License-Identifier: MIT

package powerset

import "context"

// MaxSetSize bounds the input so 2^n rows stay addressable and every mask
// fits a 32-bit vector.
const MaxSetSize = 24

// ctxCheckEvery is how many subsets a builder adds between context checks.
const ctxCheckEvery = 1 << 10

// Option configures a builder call.
type Option func(*Options)

// Options holds the resolved builder configuration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between subsets.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
