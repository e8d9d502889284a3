// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// offset is added to every vertex index a constructor emits.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{offset: 0}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// id maps a constructor-local index to a graph vertex id.
func (c builderConfig) id(i int) int { return c.offset + i }

// shifted returns a copy of c with its offset advanced by k.
func (c builderConfig) shifted(k int) builderConfig {
	c.offset += k
	return c
}
