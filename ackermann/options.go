// SPDX-License-Identifier: MIT

package ackermann

import "context"

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultMaxDepth bounds recursion in Naive and Memoized.
	DefaultMaxDepth = 1 << 20

	// DefaultMaxStack bounds the explicit stack in Iterative.
	DefaultMaxStack = 1 << 26
)

// ctxCheckEvery is the number of steps between context checks; the first
// step is always checked.
const ctxCheckEvery = 1 << 12

// Option configures a single evaluation.
type Option func(*Options)

// Options holds the resolved evaluation configuration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth limits recursion depth (Naive, Memoized). Must be > 0.
	MaxDepth int

	// MaxStack limits the explicit stack length (Iterative). Must be > 0.
	MaxStack int
}

// DefaultOptions returns Options with a background context and the default limits.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: DefaultMaxDepth,
		MaxStack: DefaultMaxStack,
	}
}

// WithContext sets the context; a nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth sets the recursion limit. Non-positive values keep the default.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxDepth = limit
		}
	}
}

// WithMaxStack sets the explicit stack limit. Non-positive values keep the default.
func WithMaxStack(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxStack = limit
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
