package dungeon_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/bspdungeon/corridor"
	"github.com/katalvlaran/bspdungeon/dungeon"
	"github.com/katalvlaran/bspdungeon/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Valid checks the defaults pass validation.
func TestDefaultOptions_Valid(t *testing.T) {
	opts := dungeon.DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 100, opts.Width)
	assert.Equal(t, 100, opts.Height)
	assert.Equal(t, 20, opts.MinCellWidth)
	assert.Equal(t, 20, opts.MinCellHeight)
	assert.Equal(t, partition.DefaultMaxDepth, opts.MaxDepth)
	assert.Equal(t, "skip", opts.ZeroGap)
}

// TestOptions_Validate runs one violation per field.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dungeon.Options)
		want   error
	}{
		{"zero width", func(o *dungeon.Options) { o.Width = 0 }, dungeon.ErrInvalidDimension},
		{"negative height", func(o *dungeon.Options) { o.Height = -4 }, dungeon.ErrInvalidDimension},
		{"zero min cell", func(o *dungeon.Options) { o.MinCellWidth = 0 }, dungeon.ErrInvalidDimension},
		{"ratio above one", func(o *dungeon.Options) { o.BiasRatio = 1.01 }, dungeon.ErrInvalidBias},
		{"strength NaN", func(o *dungeon.Options) { o.BiasStrength = math.NaN() }, dungeon.ErrInvalidBias},
		{"negative width", func(o *dungeon.Options) { o.MaxCorridorWidth = -1 }, dungeon.ErrInvalidWidth},
		{"huge width", func(o *dungeon.Options) { o.MaxCorridorWidth = math.MaxInt }, dungeon.ErrInvalidWidth},
		{"width above cap", func(o *dungeon.Options) { o.MaxCorridorWidth = corridor.MaxWidth + 1 }, dungeon.ErrInvalidWidth},
		{"negative depth", func(o *dungeon.Options) { o.MaxDepth = -1 }, dungeon.ErrInvalidDepth},
		{"unknown policy", func(o *dungeon.Options) { o.ZeroGap = "tunnel" }, dungeon.ErrInvalidPolicy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := dungeon.DefaultOptions()
			tc.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), tc.want)
		})
	}
}

// TestLoadOptions_YAML overrides a subset of fields and keeps the rest at defaults.
func TestLoadOptions_YAML(t *testing.T) {
	doc := `
width: 120
height: 80
min_cell_width: 16
min_cell_height: 12
bias_strength: 0.9
seed: 42
zero_gap: bridge
`
	opts, err := dungeon.LoadOptions(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 120, opts.Width)
	assert.Equal(t, 80, opts.Height)
	assert.Equal(t, 16, opts.MinCellWidth)
	assert.Equal(t, 12, opts.MinCellHeight)
	assert.Equal(t, 0.9, opts.BiasStrength)
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, "bridge", opts.ZeroGap)

	def := dungeon.DefaultOptions()
	assert.Equal(t, def.BiasRatio, opts.BiasRatio, "unset keys keep their defaults")
	assert.Equal(t, def.MaxCorridorWidth, opts.MaxCorridorWidth)
}

// TestLoadOptions_Empty yields the defaults.
func TestLoadOptions_Empty(t *testing.T) {
	opts, err := dungeon.LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, dungeon.DefaultOptions(), opts)
}

// TestLoadOptions_Errors covers undecodable documents and invalid values.
func TestLoadOptions_Errors(t *testing.T) {
	_, err := dungeon.LoadOptions(strings.NewReader("width: [1, 2]\n"))
	assert.ErrorIs(t, err, dungeon.ErrInvalidConfig)

	_, err = dungeon.LoadOptions(strings.NewReader("depth_limit: 3\n"))
	assert.ErrorIs(t, err, dungeon.ErrInvalidConfig, "unknown keys are rejected")

	_, err = dungeon.LoadOptions(strings.NewReader("bias_ratio: 2\n"))
	assert.ErrorIs(t, err, dungeon.ErrInvalidBias)
}

// TestOptions_ZeroValueDefaults: a struct literal leaving Seed, MaxDepth and
// ZeroGap unset validates and generates the same layout as DefaultOptions.
func TestOptions_ZeroValueDefaults(t *testing.T) {
	literal := dungeon.Options{
		Width: 100, Height: 100,
		MinCellWidth: 20, MinCellHeight: 20,
		BiasRatio: 0.75, BiasStrength: 0.5,
		MaxCorridorWidth: 1,
		Seed:             7,
	}
	require.NoError(t, literal.Validate())

	def := dungeon.DefaultOptions()
	def.Seed = 7

	got, err := dungeon.Generate(literal)
	require.NoError(t, err)
	want, err := dungeon.Generate(def)
	require.NoError(t, err)

	assert.Greater(t, len(got.Rooms), 1, "zero MaxDepth must not stop the partition at the root")
	assert.Equal(t, want.Leaves, got.Leaves)
	assert.Equal(t, want.Rooms, got.Rooms)
	assert.Equal(t, want.Corridors, got.Corridors)
}
