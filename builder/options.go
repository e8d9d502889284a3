// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// any edge is emitted.
type BuilderOption func(*builderConfig)

// WithOffset shifts every vertex id a constructor emits by k, which lets
// several constructors share one graph without overlapping.
// Panics on k < 0.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOffset(k < 0)")
	}
	return func(c *builderConfig) {
		c.offset = k
	}
}
