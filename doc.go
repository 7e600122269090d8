// Package bspdungeon generates rectangular dungeon layouts by binary space
// partitioning: the area is split recursively into cells, one room is placed
// in each leaf cell, and corridors chain the rooms together.
//
// Everything is deterministic for a given seed. Every random choice goes
// through one caller-supplied *rand.Rand, in a fixed order.
//
// The work is organized under these subpackages:
//
//	geom/      integer points and half-open rectangles, with orb conversions
//	partition/ PartitionTree: recursive BSP split of an area into leaf cells
//	room/      RoomPlacer: one biased room per leaf cell
//	corridor/  CorridorRouter: nearest-neighbour chain of rectangular bridges
//	raster/    tile grid rendering and flood-fill connectivity
//	dungeon/   the full pipeline: Options (YAML), Generate, Layout queries
//
// Quick example:
//
//	opts := dungeon.DefaultOptions()
//	opts.Seed = 42
//	layout, err := dungeon.Generate(opts)
//	if err != nil {
//		return err
//	}
//	fmt.Print(layout) // prints a map such as:
//
//	#####################
//	#....######.........#
//	#....######.........#
//	#......#............#
//	#....#.#####........#
//	#####################
//
// Rooms are disjoint. Corridors may overlap rooms and each other, and under
// the default zero-gap policy a pair of rooms that share an edge coordinate
// is left to touch (or not) on its own. Layout.Connectivity reports the
// resulting groups.
package bspdungeon
