package editor

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/tilemap"
)

func solid(c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newTable() *assets.Table {
	tbl := assets.NewTable()
	tbl.Add("ground", "grass.png", solid(color.NRGBA{R: 255, A: 255}))
	tbl.Add("ground", "rock.png", solid(color.NRGBA{B: 255, A: 255}))
	return tbl
}

type memClipboard struct {
	data []byte
	err  error
}

func (c *memClipboard) Read() ([]byte, error) { return c.data, c.err }

func (c *memClipboard) Write(data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.data = append([]byte(nil), data...)
	return nil
}

func newEditor(t *testing.T, mutate func(*Options)) *Editor {
	t.Helper()
	r, err := render.NewRaster(goregular.TTF)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	opts := Options{
		Assets:  newTable(),
		Config:  config.Default(),
		Backend: r,
		Raster:  r,
		Now:     func() time.Time { return time.Unix(1700000000, 0) },
	}
	if mutate != nil {
		mutate(&opts)
	}
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// click returns the frame on which the left button goes down at p.
func click(p image.Point) Frame {
	return Frame{Cursor: p, Pressed: true, Press: p, JustPressed: true}
}

func key(name string) Frame {
	return Frame{Keys: []KeyEvent{{Key: name, Down: true}, {Key: name}}}
}

// cellPoint is a window point inside grid cell (x, y).
func cellPoint(x, y int) image.Point {
	return image.Pt(200+x*16+5, y*16+5)
}

// selectTile clicks the ground category and then its index-th thumbnail.
func selectTile(e *Editor, index int) {
	e.Update(click(image.Pt(20, 15)))
	e.Update(Frame{})
	rect := e.Layout().Tiles[index].Rect
	e.Update(click(rect.Min.Add(image.Pt(4, 4))))
	e.Update(Frame{})
}

func layersOf(m *tilemap.Map) []int {
	var out []int
	for _, p := range m.Tiles() {
		out = append(out, p.Tile.Layer)
	}
	return out
}

func TestNewValidates(t *testing.T) {
	r, err := render.NewRaster(goregular.TTF)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if _, err := New(Options{Config: config.Default(), Backend: r}); !errors.Is(err, ErrNoAssets) {
		t.Fatalf("expected ErrNoAssets, got %v", err)
	}
	cfg := config.Default()
	cfg.Layers = 0
	if _, err := New(Options{Assets: newTable(), Config: cfg, Backend: r}); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestScenario(t *testing.T) {
	e := newEditor(t, nil)
	selectTile(e, 0)

	if sel := e.Palette().State().Tile(); sel == nil || sel.Category != "ground" || sel.Index != 0 {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if e.Cursor().Current() != 1 {
		t.Fatalf("expected cursor 1, got %d", e.Cursor().Current())
	}

	e.Update(click(cellPoint(3, 4)))
	e.Update(Frame{})
	if e.Map().Len() != 1 {
		t.Fatalf("expected 1 tile, got %d", e.Map().Len())
	}

	e.Update(key("Q"))
	if e.Cursor().Current() != 2 || e.Cursor().PaintLayer() != 8 {
		t.Fatalf("expected cursor 2 painting layer 8, got %d/%d", e.Cursor().Current(), e.Cursor().PaintLayer())
	}

	e.Update(click(cellPoint(3, 4)))
	e.Update(Frame{})
	if e.Map().Len() != 1 {
		t.Fatalf("placement on occupied cell accepted, len=%d", e.Map().Len())
	}

	e.Update(click(cellPoint(3, 5)))
	e.Update(Frame{})

	wantCoords := []tilemap.Coord{{X: 3, Y: 4}, {X: 3, Y: 5}}
	var gotCoords []tilemap.Coord
	for _, p := range e.Map().Tiles() {
		gotCoords = append(gotCoords, p.At)
	}
	if diff := cmp.Diff(wantCoords, gotCoords); diff != "" {
		t.Fatalf("coords mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{9, 8}, layersOf(e.Map())); diff != "" {
		t.Fatalf("layers mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacementRules(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  int
	}{
		{"press edge on canvas", click(cellPoint(1, 1)), 1},
		{"held without edge", Frame{Cursor: cellPoint(1, 1), Pressed: true, Press: cellPoint(1, 1)}, 0},
		{"over toolbar", func() Frame { f := click(cellPoint(1, 1)); f.UIHovered = true; return f }(), 0},
		{"on palette", click(image.Pt(190, 700)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(t, nil)
			selectTile(e, 1)
			e.Update(tt.frame)
			if e.Map().Len() != tt.want {
				t.Fatalf("expected %d tiles, got %d", tt.want, e.Map().Len())
			}
		})
	}
}

func TestNoSelectionPlacesNothing(t *testing.T) {
	e := newEditor(t, nil)
	e.Update(click(cellPoint(2, 2)))
	if e.Map().Len() != 0 {
		t.Fatalf("expected empty map, got %d", e.Map().Len())
	}
}

func TestCellClampsLeftOfCanvas(t *testing.T) {
	e := newEditor(t, nil)
	e.Update(Frame{Cursor: image.Pt(190, 300)})
	if e.Cell() != (tilemap.Coord{}) {
		t.Fatalf("expected (0,0), got %v", e.Cell())
	}
	e.Update(Frame{Cursor: cellPoint(7, 9)})
	if e.Cell() != (tilemap.Coord{X: 7, Y: 9}) {
		t.Fatalf("expected (7,9), got %v", e.Cell())
	}
}

func TestKeyLatch(t *testing.T) {
	e := newEditor(t, nil)

	// Q held across frames: one transition.
	e.Update(Frame{Keys: []KeyEvent{{Key: "Q", Down: true}}})
	e.Update(Frame{Keys: []KeyEvent{{Key: "Q", Down: true}}})
	if e.Cursor().Current() != 2 {
		t.Fatalf("expected cursor 2, got %d", e.Cursor().Current())
	}

	// E pressed while Q is still held is swallowed.
	e.Update(Frame{Keys: []KeyEvent{{Key: "E", Down: true}}})
	if e.Cursor().Current() != 2 {
		t.Fatalf("expected latch to swallow E, got %d", e.Cursor().Current())
	}

	e.Update(Frame{Keys: []KeyEvent{{Key: "Q"}, {Key: "E"}}})
	e.Update(key("E"))
	e.Update(key("E"))
	if e.Cursor().Current() != 10 {
		t.Fatalf("expected cursor to wrap to 10, got %d", e.Cursor().Current())
	}
}

func TestToolKeys(t *testing.T) {
	e := newEditor(t, nil)
	var notified []Tool
	e.OnToolChange(func(t Tool) { notified = append(notified, t) })
	selectTile(e, 0)

	e.Update(key("Digit2"))
	if e.Tool() != ToolDelete {
		t.Fatalf("expected delete tool, got %v", e.Tool())
	}
	e.Update(click(cellPoint(0, 0)))
	e.Update(Frame{})
	if e.Map().Len() != 0 {
		t.Fatalf("unimplemented tool changed the map")
	}

	e.Update(key("Digit1"))
	e.Update(click(cellPoint(0, 0)))
	if e.Map().Len() != 1 {
		t.Fatalf("place tool did not place")
	}
	if diff := cmp.Diff([]Tool{ToolDelete, ToolPlace}, notified); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestExportImport(t *testing.T) {
	clip := &memClipboard{}
	src := newEditor(t, func(o *Options) { o.Clipboard = clip })
	selectTile(src, 1)
	src.Update(click(cellPoint(4, 4)))
	src.Update(Frame{})
	src.Update(key("F5"))

	if len(clip.data) == 0 {
		t.Fatalf("export wrote nothing")
	}

	dst := newEditor(t, func(o *Options) { o.Clipboard = clip })
	dst.Update(key("F9"))
	if diff := cmp.Diff(src.Map().Export(16, 10), dst.Map().Export(16, 10)); diff != "" {
		t.Fatalf("imported map mismatch (-want +got):\n%s", diff)
	}

	// A second import only produces duplicates.
	if err := dst.Import(); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if dst.Map().Len() != 1 {
		t.Fatalf("expected 1 tile after re-import, got %d", dst.Map().Len())
	}
}

func TestClipboardErrors(t *testing.T) {
	e := newEditor(t, nil)
	if err := e.Export(); !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("expected ErrNoClipboard, got %v", err)
	}

	boom := errors.New("boom")
	e = newEditor(t, func(o *Options) { o.Clipboard = &memClipboard{err: boom} })
	if err := e.Export(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
	if err := e.Import(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	e := newEditor(t, func(o *Options) { o.Config.SnapshotDir = dir })
	selectTile(e, 0)
	e.Update(click(cellPoint(2, 3)))

	path, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if want := filepath.Join(dir, "map-1700000000.png"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Size() != image.Pt(800, 800) {
		t.Fatalf("unexpected snapshot size %v", img.Bounds().Size())
	}
	if r, _, _, _ := img.At(2*16+8, 3*16+8).RGBA(); r>>8 < 200 {
		t.Fatalf("expected red tile in snapshot, r=%d", r>>8)
	}
}

func TestSnapshotDisabled(t *testing.T) {
	e := newEditor(t, func(o *Options) { o.Raster = nil })
	if _, err := e.Snapshot(); !errors.Is(err, ErrNoRaster) {
		t.Fatalf("expected ErrNoRaster, got %v", err)
	}
}

func TestReload(t *testing.T) {
	e := newEditor(t, nil)
	cfg := config.Default()
	cfg.Keys.NextLayer = "W"
	cfg.LargeThumbnails = []string{"ground"}
	cfg.Layers = 3
	e.Reload(cfg)

	e.Update(key("Q"))
	if e.Cursor().Current() != 1 {
		t.Fatalf("old binding still active")
	}
	e.Update(key("W"))
	if e.Cursor().Current() != 2 {
		t.Fatalf("new binding not applied")
	}
	if e.Config().Layers != 10 {
		t.Fatalf("layer count changed without restart")
	}
	if got := e.Palette().ThumbSize("ground"); got != 64 {
		t.Fatalf("expected large thumbnails for ground, got %d", got)
	}
}

func TestDraw(t *testing.T) {
	r, err := render.NewRaster(goregular.TTF)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	e := newEditor(t, func(o *Options) { o.Backend = r })
	selectTile(e, 0)
	e.Update(click(cellPoint(3, 4)))

	screen := r.NewCanvas(1000, 800)
	e.Draw(screen)
	img := screen.Image()

	if cr, _, _, _ := img.At(200+3*16+8, 4*16+8).RGBA(); cr>>8 < 200 {
		t.Fatalf("expected placed tile on screen, r=%d", cr>>8)
	}
	if cr, _, _, _ := img.At(195, 790).RGBA(); cr>>8 < 42 || cr>>8 > 48 {
		t.Fatalf("expected sidebar background, r=%d", cr>>8)
	}
	if cr, _, _, _ := img.At(600, 400).RGBA(); cr>>8 < 22 || cr>>8 > 28 {
		t.Fatalf("expected canvas background, r=%d", cr>>8)
	}
}

func TestStatusLabels(t *testing.T) {
	e := newEditor(t, nil)
	e.Update(key("Q"))
	var got []string
	for _, l := range e.statusLabels() {
		got = append(got, l.text)
	}
	want := []string{
		"1: Place Tile",
		"2: Delete Tile",
		"3: Fill Selection",
		"4: Tile Selection",
		"Q: Next Layer",
		"E: Prev Layer",
		"Layer: 2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}
