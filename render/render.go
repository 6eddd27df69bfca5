// Package render defines the drawing surface used by the editor and a
// software implementation backed by gogpu/gg.
//
// Coordinates are integer pixels with the origin at the top-left corner.
// Text is positioned by the top-left corner of its line box.
package render

import (
	"image"
	"image/color"

	"github.com/milk9111/tilepaint/assets"
)

// Surface is a drawable bitmap.
type Surface interface {
	Size() image.Point

	// Clear resets every pixel to transparent.
	Clear()
	Fill(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	// StrokeRect outlines r with a border of the given width drawn inside r.
	StrokeRect(r image.Rectangle, width int, c color.Color)
	Line(from, to image.Point, width int, c color.Color)

	// Blit draws img at its native size with its top-left corner at at.
	Blit(img *assets.Image, at image.Point)
	// BlitScaled draws img stretched to dst using nearest-neighbour sampling.
	BlitScaled(img *assets.Image, dst image.Rectangle)
	// DrawSurface composites src over this surface. src must come from the
	// same backend.
	DrawSurface(src Surface, at image.Point)

	// Text draws s and returns the rectangle it occupies.
	Text(s string, at image.Point, size float64, c color.Color) image.Rectangle
}

// Measurer reports the extent of a text line without drawing it.
type Measurer interface {
	MeasureText(s string, size float64) image.Point
}

// Backend creates surfaces that can be composited together.
type Backend interface {
	Measurer
	NewSurface(width, height int) Surface
}

// TextRect returns the rectangle a label occupies when drawn at at.
func TextRect(m Measurer, s string, at image.Point, size float64) image.Rectangle {
	return image.Rectangle{Min: at, Max: at.Add(m.MeasureText(s, size))}
}
