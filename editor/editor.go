// Package editor runs one editing session: it turns per-frame input into
// palette selections, tile placements and layer changes, and draws the
// result.
package editor

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/grid"
	"github.com/milk9111/tilepaint/layers"
	"github.com/milk9111/tilepaint/palette"
	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/tilemap"
)

// Assets is what the editor needs from an asset table.
type Assets interface {
	palette.Source
	tilemap.Resolver
}

// Clipboard stores exported maps as text.
type Clipboard interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

type Options struct {
	Assets  Assets
	Config  config.Config
	Backend render.Backend
	// Raster renders snapshots. Snapshots are disabled when nil.
	Raster *render.Raster
	// Clipboard backs export and import. Both are disabled when nil.
	Clipboard Clipboard
	// Now defaults to time.Now.
	Now func() time.Time
}

type Editor struct {
	cfg     config.Config
	assets  Assets
	backend render.Backend
	raster  *render.Raster
	clip    Clipboard
	now     func() time.Time

	palette *palette.Palette
	layout  palette.Layout
	sidebar render.Surface
	grid    grid.Mapper
	tiles   *tilemap.Map
	cursor  *layers.Cursor
	latch   layers.Latch
	comp    *layers.Compositor

	tool Tool
	cell tilemap.Coord
	fps  float64

	toolChanged func(Tool)
}

var ErrNoAssets = errors.New("editor: no assets")

func New(opts Options) (*Editor, error) {
	if opts.Assets == nil {
		return nil, ErrNoAssets
	}
	if opts.Backend == nil {
		return nil, errors.New("editor: no render backend")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg := opts.Config
	canvas := cfg.CanvasSize()
	e := &Editor{
		cfg:     cfg,
		assets:  opts.Assets,
		backend: opts.Backend,
		raster:  opts.Raster,
		clip:    opts.Clipboard,
		now:     now,
		palette: palette.New(opts.Assets, cfg.PaletteWidth, cfg.LargeThumbnails),
		sidebar: opts.Backend.NewSurface(cfg.PaletteWidth, cfg.WindowHeight),
		grid:    grid.Mapper{Margin: cfg.PaletteWidth, Scale: cfg.TileScale},
		tiles:   tilemap.New(),
		cursor:  layers.NewCursor(cfg.Layers),
		comp:    layers.NewCompositor(opts.Backend, cfg.Layers, canvas.X, canvas.Y),
		tool:    ToolPlace,
	}
	e.layout = e.palette.Layout(e.backend)
	return e, nil
}

func (e *Editor) Config() config.Config     { return e.cfg }
func (e *Editor) Map() *tilemap.Map         { return e.tiles }
func (e *Editor) Cursor() *layers.Cursor    { return e.cursor }
func (e *Editor) Palette() *palette.Palette { return e.palette }
func (e *Editor) Tool() Tool                { return e.tool }
func (e *Editor) Cell() tilemap.Coord       { return e.cell }
func (e *Editor) Layout() palette.Layout    { return e.layout }

// OnToolChange registers fn to be called when a key changes the tool.
func (e *Editor) OnToolChange(fn func(Tool)) {
	e.toolChanged = fn
}

func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.tool = t
	if !t.Implemented() {
		log.Printf("editor: tool %q is not implemented", t)
	}
}

// Update advances the session by one frame.
func (e *Editor) Update(f Frame) {
	e.fps = f.FPS

	e.layout = e.palette.Layout(e.backend)
	if f.Pressed && e.palette.HandleClick(e.layout, f.Press) {
		e.layout = e.palette.Layout(e.backend)
	}

	e.cell = e.grid.Cell(f.Cursor)
	if f.JustPressed && !f.UIHovered && e.grid.InCanvas(f.Press) {
		e.apply()
	}

	for _, ev := range f.Keys {
		if !ev.Down {
			e.latch.Up()
			continue
		}
		if !e.latch.Down() {
			continue
		}
		e.handleKey(ev.Key)
	}
}

func (e *Editor) apply() {
	switch e.tool {
	case ToolPlace:
		e.Place(e.cell)
	}
}

// Place stamps the selected tile at c on the current paint layer. It
// reports whether the map changed.
func (e *Editor) Place(c tilemap.Coord) bool {
	sel := e.palette.State().Tile()
	if sel == nil {
		return false
	}
	return e.tiles.Place(tilemap.Tile{Image: sel.Image, Layer: e.cursor.PaintLayer()}, c)
}

func (e *Editor) handleKey(key string) {
	k := e.cfg.Keys
	switch key {
	case k.NextLayer:
		e.cursor.Next()
	case k.PrevLayer:
		e.cursor.Prev()
	case k.Place:
		e.selectTool(ToolPlace)
	case k.Delete:
		e.selectTool(ToolDelete)
	case k.Fill:
		e.selectTool(ToolFill)
	case k.Select:
		e.selectTool(ToolSelect)
	case k.Export:
		if err := e.Export(); err != nil {
			log.Printf("editor: export: %v", err)
		}
	case k.Import:
		if err := e.Import(); err != nil {
			log.Printf("editor: import: %v", err)
		}
	case k.Snapshot:
		path, err := e.Snapshot()
		if err != nil {
			log.Printf("editor: snapshot: %v", err)
			return
		}
		log.Printf("editor: wrote snapshot %s", path)
	}
}

func (e *Editor) selectTool(t Tool) {
	e.SetTool(t)
	if e.toolChanged != nil {
		e.toolChanged(t)
	}
}

// Reload applies the live parts of cfg. Settings that need a restart are
// logged and ignored.
func (e *Editor) Reload(cfg config.Config) {
	if changed := e.cfg.RestartRequired(cfg); len(changed) > 0 {
		log.Printf("editor: config changes need a restart: %v", changed)
	}
	e.cfg.ApplyLive(cfg)
	e.palette.SetLargeThumbnails(e.cfg.LargeThumbnails)
	e.layout = e.palette.Layout(e.backend)
	log.Println("editor: config reloaded")
}

// Draw renders the canvas, sidebar and status labels onto screen.
func (e *Editor) Draw(screen render.Surface) {
	screen.Fill(render.Background)

	e.comp.Render(e.tiles.Tiles(), e.cfg.TileScale)
	e.comp.Composite(screen, image.Pt(e.cfg.PaletteWidth, 0))

	e.palette.Draw(e.sidebar, e.layout)
	screen.DrawSurface(e.sidebar, image.Point{})

	e.drawStatus(screen)
}

func (e *Editor) drawStatus(screen render.Surface) {
	x := e.cfg.PaletteWidth + 10
	screen.Text(fmt.Sprintf("X: %d | Y: %d", e.cell.X, e.cell.Y), image.Pt(x, 750), 20, render.White)
	screen.Text(fmt.Sprintf("FPS: %.2f", e.fps), image.Pt(x, 780), 13, render.Green)

	for _, l := range e.statusLabels() {
		screen.Text(l.text, l.at, l.size, render.White)
	}
}

type label struct {
	text string
	at   image.Point
	size float64
}

func (e *Editor) statusLabels() []label {
	k := e.cfg.Keys
	return []label{
		{fmt.Sprintf("%s: %s", keyLabel(k.Place), ToolPlace), image.Pt(215, 15), 13},
		{fmt.Sprintf("%s: %s", keyLabel(k.Delete), ToolDelete), image.Pt(215, 45), 13},
		{fmt.Sprintf("%s: %s", keyLabel(k.Fill), ToolFill), image.Pt(365, 15), 13},
		{fmt.Sprintf("%s: %s", keyLabel(k.Select), ToolSelect), image.Pt(365, 45), 13},
		{fmt.Sprintf("%s: Next Layer", keyLabel(k.NextLayer)), image.Pt(555, 15), 13},
		{fmt.Sprintf("%s: Prev Layer", keyLabel(k.PrevLayer)), image.Pt(555, 45), 13},
		{fmt.Sprintf("Layer: %d", e.cursor.Current()), image.Pt(885, 20), 20},
	}
}

// keyLabel shortens ebiten digit key names ("Digit1" -> "1").
func keyLabel(key string) string {
	if len(key) == len("Digit0") && key[:5] == "Digit" {
		return key[5:]
	}
	return key
}

var _ Assets = (*assets.Table)(nil)
