package dungeon

import (
	"errors"
	"io"

	"github.com/katalvlaran/bspdungeon/corridor"
	"github.com/katalvlaran/bspdungeon/geom"
	"github.com/katalvlaran/bspdungeon/partition"
	"gopkg.in/yaml.v3"
)

// Options is the full configuration surface of a generation run.
//
// Fields:
//   - Width, Height         — dungeon size in cells (> 0).
//   - MinCellWidth/Height   — smallest partition extent along a split axis (> 0).
//   - BiasRatio             — target share of its cell a room spans, [0,1].
//   - BiasStrength          — how strongly rooms snap to the target, [0,1].
//   - MaxCorridorWidth      — max corridor half-thickness, [0, corridor.MaxWidth].
//   - Seed                  — RNG seed; 0 selects defaultSeed.
//   - MaxDepth              — partition depth cap (>= 0); 0 selects partition.DefaultMaxDepth.
//   - ZeroGap               — "skip" (default, also for "") or "bridge"; see corridor.ZeroGapPolicy.
//
// The zero value of Seed, MaxDepth and ZeroGap selects the default, so a
// struct literal that sets only the geometry and bias fields is complete.
//
// Example (YAML):
//
//	width: 120
//	height: 80
//	min_cell_width: 16
//	min_cell_height: 12
//	bias_ratio: 0.7
//	bias_strength: 0.4
//	max_corridor_width: 1
//	seed: 42
type Options struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	MinCellWidth     int     `yaml:"min_cell_width"`
	MinCellHeight    int     `yaml:"min_cell_height"`
	BiasRatio        float64 `yaml:"bias_ratio"`
	BiasStrength     float64 `yaml:"bias_strength"`
	MaxCorridorWidth int     `yaml:"max_corridor_width"`
	Seed             int64   `yaml:"seed"`
	MaxDepth         int     `yaml:"max_depth"`
	ZeroGap          string  `yaml:"zero_gap"`
}

// Deterministic defaults.
const (
	defaultWidth            = 100
	defaultHeight           = 100
	defaultMinCell          = 20
	defaultBiasRatio        = 0.75
	defaultBiasStrength     = 0.5
	defaultMaxCorridorWidth = 1
)

// DefaultOptions returns the defaults: 100×100 dungeon, 20×20 min cells,
// bias ratio 0.75 at strength 0.5, corridor half-width up to 1, seed 0,
// partition.DefaultMaxDepth and the "skip" zero-gap policy.
func DefaultOptions() Options {
	return Options{
		Width:            defaultWidth,
		Height:           defaultHeight,
		MinCellWidth:     defaultMinCell,
		MinCellHeight:    defaultMinCell,
		BiasRatio:        defaultBiasRatio,
		BiasStrength:     defaultBiasStrength,
		MaxCorridorWidth: defaultMaxCorridorWidth,
		MaxDepth:         partition.DefaultMaxDepth,
		ZeroGap:          corridor.ZeroGapSkip.String(),
	}
}

// Size returns (Width, Height).
func (o Options) Size() geom.Point { return geom.Pt(o.Width, o.Height) }

// MinCell returns (MinCellWidth, MinCellHeight).
func (o Options) MinCell() geom.Point { return geom.Pt(o.MinCellWidth, o.MinCellHeight) }

// Validate checks every field and returns the first violation, wrapped with
// the field name. Checks run in field order.
func (o Options) Validate() error {
	if !o.Size().Positive() {
		return dungeonErrorf(MethodValidate, ErrInvalidDimension, "size %v", o.Size())
	}
	if !o.MinCell().Positive() {
		return dungeonErrorf(MethodValidate, ErrInvalidDimension, "min cell %v", o.MinCell())
	}
	if !(o.BiasRatio >= 0 && o.BiasRatio <= 1) {
		return dungeonErrorf(MethodValidate, ErrInvalidBias, "bias ratio %v", o.BiasRatio)
	}
	if !(o.BiasStrength >= 0 && o.BiasStrength <= 1) {
		return dungeonErrorf(MethodValidate, ErrInvalidBias, "bias strength %v", o.BiasStrength)
	}
	if o.MaxCorridorWidth < 0 || o.MaxCorridorWidth > corridor.MaxWidth {
		return dungeonErrorf(MethodValidate, ErrInvalidWidth, "max corridor width %d", o.MaxCorridorWidth)
	}
	if o.MaxDepth < 0 {
		return dungeonErrorf(MethodValidate, ErrInvalidDepth, "max depth %d", o.MaxDepth)
	}
	if _, ok := corridor.ParseZeroGapPolicy(o.ZeroGap); !ok {
		return dungeonErrorf(MethodValidate, ErrInvalidPolicy, "zero gap %q", o.ZeroGap)
	}
	return nil
}

// maxDepth resolves MaxDepth, mapping 0 to partition.DefaultMaxDepth.
func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return partition.DefaultMaxDepth
	}
	return o.MaxDepth
}

// zeroGapPolicy resolves ZeroGap; call only after Validate.
func (o Options) zeroGapPolicy() corridor.ZeroGapPolicy {
	p, _ := corridor.ParseZeroGapPolicy(o.ZeroGap)
	return p
}

// LoadOptions decodes a YAML document from r over DefaultOptions and
// validates the result. Unknown keys are rejected. An empty document yields
// the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, dungeonErrorf(MethodLoadOptions, ErrInvalidConfig, "%v", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, dungeonErrorf(MethodLoadOptions, err, "decoded options")
	}
	return opts, nil
}
