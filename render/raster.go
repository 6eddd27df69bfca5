package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/milk9111/tilepaint/assets"
)

// Raster is a CPU backend built on gogpu/gg. It renders without a window,
// which makes it suitable for snapshots and tests.
type Raster struct {
	font  *text.FontSource
	faces map[float64]text.Face
	bufs  map[*assets.Image]*gg.ImageBuf
}

// NewRaster parses fontData (TTF/OTF) for text rendering.
func NewRaster(fontData []byte) (*Raster, error) {
	src, err := text.NewFontSource(fontData)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return &Raster{
		font:  src,
		faces: make(map[float64]text.Face),
		bufs:  make(map[*assets.Image]*gg.ImageBuf),
	}, nil
}

func (r *Raster) face(size float64) text.Face {
	f, ok := r.faces[size]
	if !ok {
		f = r.font.Face(size)
		r.faces[size] = f
	}
	return f
}

func (r *Raster) buf(img *assets.Image) *gg.ImageBuf {
	b, ok := r.bufs[img]
	if !ok {
		b = gg.ImageBufFromImage(img.Src)
		r.bufs[img] = b
	}
	return b
}

func (r *Raster) MeasureText(s string, size float64) image.Point {
	f := r.face(size)
	m := f.Metrics()
	return image.Pt(int(f.Advance(s)+0.5), int(m.Ascent+m.Descent+0.5))
}

func (r *Raster) NewSurface(width, height int) Surface {
	return r.NewCanvas(width, height)
}

// NewCanvas is NewSurface with the concrete type, for callers that need
// the pixels.
func (r *Raster) NewCanvas(width, height int) *Canvas {
	return &Canvas{r: r, dc: gg.NewContext(width, height)}
}

// Canvas is a Raster surface.
type Canvas struct {
	r  *Raster
	dc *gg.Context
}

func (c *Canvas) Size() image.Point { return image.Pt(c.dc.Width(), c.dc.Height()) }

func (c *Canvas) Clear() { c.dc.Clear() }

func (c *Canvas) Fill(col color.Color) { c.dc.ClearWithColor(gg.FromColor(col)) }

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if err := c.dc.Fill(); err != nil {
		log.Printf("render: fill rect %v: %v", r, err)
	}
}

func (c *Canvas) StrokeRect(r image.Rectangle, width int, col color.Color) {
	w := float64(width)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(w)
	c.dc.DrawRectangle(float64(r.Min.X)+w/2, float64(r.Min.Y)+w/2, float64(r.Dx())-w, float64(r.Dy())-w)
	if err := c.dc.Stroke(); err != nil {
		log.Printf("render: stroke rect %v: %v", r, err)
	}
}

func (c *Canvas) Line(from, to image.Point, width int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	if err := c.dc.Stroke(); err != nil {
		log.Printf("render: line %v-%v: %v", from, to, err)
	}
}

func (c *Canvas) Blit(img *assets.Image, at image.Point) {
	c.BlitScaled(img, image.Rectangle{Min: at, Max: at.Add(img.Size())})
}

func (c *Canvas) BlitScaled(img *assets.Image, dst image.Rectangle) {
	c.drawBuf(c.r.buf(img), dst)
}

func (c *Canvas) drawBuf(b *gg.ImageBuf, dst image.Rectangle) {
	c.dc.DrawImageEx(b, gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func (c *Canvas) DrawSurface(src Surface, at image.Point) {
	s, ok := src.(*Canvas)
	if !ok {
		panic(fmt.Sprintf("render: cannot composite %T onto a raster canvas", src))
	}
	b := gg.ImageBufFromImage(s.dc.Image())
	c.drawBuf(b, image.Rectangle{Min: at, Max: at.Add(s.Size())})
}

func (c *Canvas) Text(s string, at image.Point, size float64, col color.Color) image.Rectangle {
	f := c.r.face(size)
	c.dc.SetFont(f)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(at.X), float64(at.Y)+f.Metrics().Ascent)
	return TextRect(c.r, s, at, size)
}

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save png %s: %w", path, err)
	}
	return nil
}
