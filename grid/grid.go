// Package grid maps pointer positions to tile cells on the canvas.
package grid

import (
	"image"

	"github.com/milk9111/tilepaint/tilemap"
)

// Mapper converts window pixels into canvas cells. The canvas starts Margin
// pixels from the left edge of the window.
type Mapper struct {
	Margin int
	Scale  int
}

// Cell returns the cell under p. Pointers left of the canvas produce a
// negative column, which is clamped to (0,0).
func (m Mapper) Cell(p image.Point) tilemap.Coord {
	col := floorDiv(p.X-m.Margin, m.Scale)
	row := floorDiv(p.Y, m.Scale)
	if col < 0 {
		return tilemap.Coord{}
	}
	return tilemap.Coord{X: col, Y: row}
}

// InCanvas reports whether p lies at or right of the canvas edge.
func (m Mapper) InCanvas(p image.Point) bool {
	return p.X >= m.Margin
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
