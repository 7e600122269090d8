// SPDX-License-Identifier: MIT
// Package: bspdungeon/partition
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Build itself never panics; it returns sentinel errors.

package partition

// DefaultMaxDepth bounds the depth of a tree built without WithMaxDepth.
// Nodes at this depth are kept as leaves even if they could be split.
const DefaultMaxDepth = 64

// Option customizes Build.
type Option func(*buildConfig)

// buildConfig aggregates Build knobs. Resolved once per Build call.
type buildConfig struct {
	maxDepth int
}

// WithMaxDepth caps the depth of the tree. The root has depth 0, so
// WithMaxDepth(1) allows at most one split. Panics if depth < 0.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("partition: WithMaxDepth(depth<0)")
	}
	return func(c *buildConfig) {
		c.maxDepth = depth
	}
}

// newBuildConfig applies opts over the defaults; last option wins.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
