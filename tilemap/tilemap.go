// Package tilemap holds the placed tiles of an editing session.
package tilemap

import (
	"fmt"
	"image"

	"github.com/milk9111/tilepaint/assets"
)

// Coord is a cell position in tile units.
type Coord struct {
	X int
	Y int
}

// Pixel returns the top-left pixel of the cell for the given tile scale.
func (c Coord) Pixel(scale int) image.Point {
	return image.Pt(c.X*scale, c.Y*scale)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile identifies what to draw and on which layer.
type Tile struct {
	Image *assets.Image
	Layer int
}

// Placed associates a Tile with the cell it occupies.
type Placed struct {
	Tile Tile
	At   Coord
}

// Map is the append-only, insertion-ordered list of placed tiles.
//
// A cell holds at most one tile regardless of layer: placing onto an
// occupied cell on another layer is rejected too.
type Map struct {
	tiles []Placed
	index map[Coord]int
}

func New() *Map {
	return &Map{index: make(map[Coord]int)}
}

// Place appends tile at the given cell. It reports false and leaves the map
// untouched when the cell is already occupied or the tile has no image.
func (m *Map) Place(tile Tile, at Coord) bool {
	if tile.Image == nil {
		return false
	}
	if _, ok := m.index[at]; ok {
		return false
	}
	m.index[at] = len(m.tiles)
	m.tiles = append(m.tiles, Placed{Tile: tile, At: at})
	return true
}

// At returns the tile occupying c.
func (m *Map) At(c Coord) (Placed, bool) {
	i, ok := m.index[c]
	if !ok {
		return Placed{}, false
	}
	return m.tiles[i], true
}

func (m *Map) Len() int { return len(m.tiles) }

// Tiles returns the placed tiles in insertion order. The slice must not be modified.
func (m *Map) Tiles() []Placed { return m.tiles }
