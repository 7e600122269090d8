package raster

import (
	"errors"

	"github.com/katalvlaran/bspdungeon/geom"
)

// ErrEmptyGrid indicates grid bounds with no rows or no columns.
var ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")

// Tile is the content of one grid cell.
type Tile uint8

const (
	// Wall is solid rock.
	Wall Tile = iota
	// Floor is walkable space inside a room or corridor.
	Floor
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Grid is a row-major occupancy grid covering Bounds. Cell (x,y) in world
// coordinates lives at Tiles[(y-Bounds.Y0)*Width + (x-Bounds.X0)].
type Grid struct {
	Bounds        geom.Rect
	Width, Height int
	Tiles         []Tile
}
