package layers

import (
	"image"

	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/tilemap"
)

// Compositor owns one transparent surface per layer. Layer 0 is drawn first.
type Compositor struct {
	surfaces []render.Surface
}

func NewCompositor(b render.Backend, n, width, height int) *Compositor {
	c := &Compositor{surfaces: make([]render.Surface, n)}
	for i := range c.surfaces {
		c.surfaces[i] = b.NewSurface(width, height)
	}
	return c
}

func (c *Compositor) Layer(i int) render.Surface { return c.surfaces[i] }

// Render clears every layer and redraws tiles in insertion order on their
// own layer. Tiles with an out of range layer are skipped.
func (c *Compositor) Render(tiles []tilemap.Placed, scale int) {
	for _, s := range c.surfaces {
		s.Clear()
	}
	for _, p := range tiles {
		if p.Tile.Layer < 0 || p.Tile.Layer >= len(c.surfaces) {
			continue
		}
		c.surfaces[p.Tile.Layer].Blit(p.Tile.Image, p.At.Pixel(scale))
	}
}

// Composite draws the layers onto dst with their top-left corner at at.
func (c *Compositor) Composite(dst render.Surface, at image.Point) {
	for _, s := range c.surfaces {
		dst.DrawSurface(s, at)
	}
}

// Flatten renders tiles into a single opaque canvas of the given size.
func Flatten(r *render.Raster, tiles []tilemap.Placed, n, scale int, size image.Point) *render.Canvas {
	comp := NewCompositor(r, n, size.X, size.Y)
	comp.Render(tiles, scale)
	dst := r.NewCanvas(size.X, size.Y)
	dst.Fill(render.Background)
	comp.Composite(dst, image.Point{})
	return dst
}
