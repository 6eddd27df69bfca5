// Package palette lays out, draws and hit-tests the asset sidebar.
//
// The sidebar lists every category as a text label. Below a divider it
// shows thumbnails of the selected category; clicking one selects the
// tile that will be painted.
package palette

import (
	"image"
	"slices"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/render"
)

const (
	labelX         = 15
	labelSpacing   = 25
	labelTop       = 10
	labelSize      = 15
	dividerSpacing = 30
	dividerWidth   = 2
	thumbX         = 15
	thumbGap       = 20
	thumbSmall     = 32
	thumbLarge     = 64
	outlineWidth   = 2
)

// Source is the read side of an asset table.
type Source interface {
	Categories() []string
	Images(category string) []*assets.Image
}

// CategoryButton is a clickable category label.
type CategoryButton struct {
	Name string
	Rect image.Rectangle
}

// TileButton is a clickable thumbnail.
type TileButton struct {
	Image *assets.Image
	Rect  image.Rectangle
}

// Layout is the sidebar geometry for one frame.
type Layout struct {
	Categories []CategoryButton
	DividerY   int
	Tiles      []TileButton
}

type Palette struct {
	src   Source
	state State
	width int
	large []string
}

// New returns a palette width pixels wide. Categories named in large get
// 64px thumbnails instead of 32px.
func New(src Source, width int, large []string) *Palette {
	return &Palette{src: src, width: width, large: slices.Clone(large)}
}

func (p *Palette) State() *State { return &p.state }

func (p *Palette) SetLargeThumbnails(names []string) {
	p.large = slices.Clone(names)
}

// ThumbSize returns the thumbnail edge length used for category.
func (p *Palette) ThumbSize(category string) int {
	if slices.Contains(p.large, category) {
		return thumbLarge
	}
	return thumbSmall
}

// Layout computes button rectangles from the current selection.
func (p *Palette) Layout(m render.Measurer) Layout {
	var l Layout
	cats := p.src.Categories()
	for i, name := range cats {
		at := image.Pt(labelX, i*labelSpacing+labelTop)
		l.Categories = append(l.Categories, CategoryButton{
			Name: name,
			Rect: render.TextRect(m, name, at, labelSize),
		})
	}
	l.DividerY = len(cats) * dividerSpacing

	cat, ok := p.state.Category()
	if !ok {
		return l
	}
	size := p.ThumbSize(cat)
	for i, img := range p.src.Images(cat) {
		at := image.Pt(thumbX, i*(size+thumbGap)+l.DividerY+thumbGap)
		l.Tiles = append(l.Tiles, TileButton{
			Image: img,
			Rect:  image.Rectangle{Min: at, Max: at.Add(image.Pt(size, size))},
		})
	}
	return l
}

// HandleClick applies a click at pt. Category labels are tested first, then
// thumbnails; the first button containing pt wins. It reports whether the
// selection changed.
func (p *Palette) HandleClick(l Layout, pt image.Point) bool {
	for _, b := range l.Categories {
		if pt.In(b.Rect) {
			p.state.SelectCategory(b.Name)
			return true
		}
	}
	for _, b := range l.Tiles {
		if pt.In(b.Rect) {
			p.state.SelectTile(b.Image)
			return true
		}
	}
	return false
}

// Draw paints the sidebar described by l onto dst.
func (p *Palette) Draw(dst render.Surface, l Layout) {
	dst.Fill(render.PanelBackground)

	cat, hasCat := p.state.Category()
	for _, b := range l.Categories {
		c := render.White
		if hasCat && b.Name == cat {
			c = render.Grey
		}
		dst.Text(b.Name, b.Rect.Min, labelSize, c)
	}
	dst.Line(image.Pt(0, l.DividerY), image.Pt(p.width, l.DividerY), dividerWidth, render.White)

	sel := p.state.Tile()
	for _, b := range l.Tiles {
		dst.BlitScaled(b.Image, b.Rect)
		if sel != nil && sel.Image == b.Image {
			dst.StrokeRect(b.Rect, outlineWidth, render.Green)
		}
	}
}
