// Command mapshot renders an exported map dump to a PNG without opening a
// window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/layers"
	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/tilemap"
)

// Limits on what a dump may ask the renderer to allocate. Every layer is a
// full canvas, so the pixel budget covers all of them together.
const (
	maxLayers       = 64
	maxCanvasSide   = 8192
	maxCanvasPixels = 1 << 27
)

// ErrOutOfBounds reports a dump that would need a larger canvas or more
// layers than mapshot renders.
var ErrOutOfBounds = errors.New("mapshot: dump out of bounds")

func main() {
	dataDir := flag.String("data", "./data", "Data directory containing images/")
	in := flag.String("in", "", "Map dump to render (YAML)")
	out := flag.String("out", "map.png", "Output PNG path")
	debug := flag.Bool("debug", false, "Enable renderer debug logging")
	flag.Parse()

	if *in == "" {
		log.Fatal("mapshot: -in is required")
	}
	if *debug {
		gg.SetLogger(slog.Default())
	}

	n, err := run(*dataDir, *in, *out)
	if err != nil {
		log.Fatalf("mapshot: %v", err)
	}
	log.Printf("Rendered %d tiles to %s", n, *out)
}

// run renders the dump at in using the assets under dataDir and writes the
// image to out. It returns the number of tiles drawn.
func run(dataDir, in, out string) (int, error) {
	table, err := assets.Load(dataDir)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", in, err)
	}
	d, err := tilemap.ParseDump(data)
	if err != nil {
		return 0, err
	}

	def := config.Default()
	if d.TileScale <= 0 {
		d.TileScale = def.TileScale
	}
	if d.Layers <= 0 {
		d.Layers = def.Layers
	}
	if d.TileScale > maxCanvasSide {
		return 0, fmt.Errorf("%w: tile scale %d", ErrOutOfBounds, d.TileScale)
	}
	if d.Layers > maxLayers {
		return 0, fmt.Errorf("%w: %d layers, at most %d", ErrOutOfBounds, d.Layers, maxLayers)
	}

	m := tilemap.New()
	res := tilemap.Import(d, table, d.Layers, m)
	if res.Unresolved > 0 || res.BadLayer > 0 || res.BadCoord > 0 || res.Duplicate > 0 {
		log.Printf("Skipped %d unresolved, %d bad layer, %d bad cell, %d duplicate entries",
			res.Unresolved, res.BadLayer, res.BadCoord, res.Duplicate)
	}

	size, err := canvasSize(def, m, d.TileScale)
	if err != nil {
		return 0, err
	}
	if int64(size.X)*int64(size.Y)*int64(d.Layers) > maxCanvasPixels {
		return 0, fmt.Errorf("%w: %d layers of %v", ErrOutOfBounds, d.Layers, size)
	}

	r, err := newRaster(dataDir)
	if err != nil {
		return 0, err
	}
	c := layers.Flatten(r, m.Tiles(), d.Layers, d.TileScale, size)
	if err := c.SavePNG(out); err != nil {
		return 0, err
	}
	return m.Len(), nil
}

func newRaster(dataDir string) (*render.Raster, error) {
	font, _, err := assets.LoadFont(dataDir)
	if errors.Is(err, assets.ErrNoFont) {
		font = goregular.TTF
	} else if err != nil {
		return nil, err
	}
	return render.NewRaster(font)
}

// canvasSize is the editor canvas, grown to fit tiles placed beyond it. It
// fails when a tile ends past maxCanvasSide on either axis.
func canvasSize(cfg config.Config, m *tilemap.Map, scale int) (image.Point, error) {
	size := cfg.CanvasSize()
	limit := int64(maxCanvasSide)
	for _, p := range m.Tiles() {
		if p.At.X > maxCanvasSide || p.At.Y > maxCanvasSide {
			return image.Point{}, fmt.Errorf("%w: tile at %v", ErrOutOfBounds, p.At)
		}
		img := p.Tile.Image.Size()
		endX := int64(p.At.X)*int64(scale) + int64(img.X)
		endY := int64(p.At.Y)*int64(scale) + int64(img.Y)
		if endX > limit || endY > limit {
			return image.Point{}, fmt.Errorf("%w: tile at %v ends past %d pixels", ErrOutOfBounds, p.At, maxCanvasSide)
		}
		size.X = max(size.X, int(endX))
		size.Y = max(size.Y, int(endY))
	}
	return size, nil
}
