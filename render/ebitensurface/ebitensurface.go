// Package ebitensurface implements render.Surface on top of ebiten images.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/render"
)

type Backend struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	images map[*assets.Image]*ebiten.Image
}

func New(fontData []byte) (*Backend, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: parse font: %w", err)
	}
	return &Backend{
		source: s,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[*assets.Image]*ebiten.Image),
	}, nil
}

func (b *Backend) face(size float64) *text.GoTextFace {
	f, ok := b.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: b.source, Size: size}
		b.faces[size] = f
	}
	return f
}

func (b *Backend) image(img *assets.Image) *ebiten.Image {
	e, ok := b.images[img]
	if !ok {
		e = ebiten.NewImageFromImage(img.Src)
		b.images[img] = e
	}
	return e
}

func (b *Backend) MeasureText(s string, size float64) image.Point {
	f := b.face(size)
	m := f.Metrics()
	w, h := text.Measure(s, f, m.HAscent+m.HDescent+m.HLineGap)
	return image.Pt(int(w+0.5), int(h+0.5))
}

func (b *Backend) NewSurface(width, height int) render.Surface {
	return b.Wrap(ebiten.NewImage(width, height))
}

// Wrap returns a surface drawing onto dst, typically the screen passed to
// ebiten's Draw.
func (b *Backend) Wrap(dst *ebiten.Image) *Surface {
	return &Surface{b: b, img: dst}
}

type Surface struct {
	b   *Backend
	img *ebiten.Image
}

func (s *Surface) Size() image.Point { return s.img.Bounds().Size() }

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) Fill(c color.Color) { s.img.Fill(c) }

func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	vector.FillRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *Surface) StrokeRect(r image.Rectangle, width int, c color.Color) {
	w := float32(width)
	vector.StrokeRect(s.img, float32(r.Min.X)+w/2, float32(r.Min.Y)+w/2, float32(r.Dx())-w, float32(r.Dy())-w, w, c, false)
}

func (s *Surface) Line(from, to image.Point, width int, c color.Color) {
	vector.StrokeLine(s.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, false)
}

func (s *Surface) Blit(img *assets.Image, at image.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.img.DrawImage(s.b.image(img), op)
}

func (s *Surface) BlitScaled(img *assets.Image, dst image.Rectangle) {
	src := s.b.image(img)
	size := src.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(dst.Dx())/float64(size.X), float64(dst.Dy())/float64(size.Y))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.img.DrawImage(src, op)
}

func (s *Surface) DrawSurface(src render.Surface, at image.Point) {
	o, ok := src.(*Surface)
	if !ok {
		panic(fmt.Sprintf("ebitensurface: cannot composite %T onto an ebiten surface", src))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.img.DrawImage(o.img, op)
}

func (s *Surface) Text(str string, at image.Point, size float64, c color.Color) image.Rectangle {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, s.b.face(size), op)
	return render.TextRect(s.b, str, at, size)
}
