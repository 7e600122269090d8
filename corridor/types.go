package corridor

import "github.com/katalvlaran/bspdungeon/geom"

// Orientation is the axis a bridge travels along.
type Orientation int

const (
	// Horizontal bridges travel along x between a right and a left edge.
	Horizontal Orientation = iota
	// Vertical bridges travel along y between a bottom and a top edge.
	Vertical
)

// String returns a short orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ZeroGapPolicy decides what Bridge does when the rooms' gap is exactly zero
// on either axis.
type ZeroGapPolicy int

const (
	// ZeroGapSkip treats the pair as connected and emits nothing.
	ZeroGapSkip ZeroGapPolicy = iota
	// ZeroGapBridge emits a regular three-piece corridor anyway.
	ZeroGapBridge
)

// String returns the policy name as accepted by ParseZeroGapPolicy.
func (p ZeroGapPolicy) String() string {
	switch p {
	case ZeroGapSkip:
		return "skip"
	case ZeroGapBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// ParseZeroGapPolicy maps "skip" or "bridge" to a policy. The empty string
// selects ZeroGapSkip.
func ParseZeroGapPolicy(s string) (ZeroGapPolicy, bool) {
	switch s {
	case "", "skip":
		return ZeroGapSkip, true
	case "bridge":
		return ZeroGapBridge, true
	default:
		return ZeroGapSkip, false
	}
}

// Hop is one step of the routed chain: rooms[From] was bridged to rooms[To]
// with Segments (empty when the pair was skipped as zero-gap).
type Hop struct {
	From, To int
	Segments []geom.Rect
}

// Option customizes Bridge and Route.
type Option func(*config)

type config struct {
	zeroGap ZeroGapPolicy
}

// WithZeroGapPolicy selects the zero-gap behavior. Panics on an unknown policy.
func WithZeroGapPolicy(p ZeroGapPolicy) Option {
	if p != ZeroGapSkip && p != ZeroGapBridge {
		panic("corridor: WithZeroGapPolicy(unknown)")
	}
	return func(c *config) {
		c.zeroGap = p
	}
}

// newConfig applies opts over the ZeroGapSkip default.
func newConfig(opts ...Option) config {
	cfg := config{zeroGap: ZeroGapSkip}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
