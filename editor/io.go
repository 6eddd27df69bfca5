package editor

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/tilepaint/layers"
	"github.com/milk9111/tilepaint/tilemap"
)

var (
	ErrNoClipboard = errors.New("editor: clipboard unavailable")
	ErrNoRaster    = errors.New("editor: snapshots unavailable")
)

// Export writes the map as a YAML dump to the clipboard.
func (e *Editor) Export() error {
	if e.clip == nil {
		return ErrNoClipboard
	}
	data, err := e.tiles.Export(e.cfg.TileScale, e.cfg.Layers).Marshal()
	if err != nil {
		return err
	}
	if err := e.clip.Write(data); err != nil {
		return fmt.Errorf("editor: write clipboard: %w", err)
	}
	log.Printf("editor: exported %d tiles to clipboard", e.tiles.Len())
	return nil
}

// Import reads a YAML dump from the clipboard and places its tiles on top
// of the current map.
func (e *Editor) Import() error {
	if e.clip == nil {
		return ErrNoClipboard
	}
	data, err := e.clip.Read()
	if err != nil {
		return fmt.Errorf("editor: read clipboard: %w", err)
	}
	d, err := tilemap.ParseDump(data)
	if err != nil {
		return err
	}
	if d.TileScale != 0 && d.TileScale != e.cfg.TileScale {
		log.Printf("editor: dump tile scale %d differs from %d", d.TileScale, e.cfg.TileScale)
	}
	res := tilemap.Import(d, e.assets, e.cfg.Layers, e.tiles)
	log.Printf("editor: imported %d tiles (%d duplicate, %d unresolved, %d bad layer, %d bad cell)",
		res.Placed, res.Duplicate, res.Unresolved, res.BadLayer, res.BadCoord)
	return nil
}

// Snapshot renders the canvas to a PNG in the snapshot directory and
// returns its path.
func (e *Editor) Snapshot() (string, error) {
	if e.raster == nil {
		return "", ErrNoRaster
	}
	if err := os.MkdirAll(e.cfg.SnapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("editor: create %s: %w", e.cfg.SnapshotDir, err)
	}
	path := filepath.Join(e.cfg.SnapshotDir, fmt.Sprintf("map-%d.png", e.now().Unix()))
	c := layers.Flatten(e.raster, e.tiles.Tiles(), e.cfg.Layers, e.cfg.TileScale, e.cfg.CanvasSize())
	if err := c.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
