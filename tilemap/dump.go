package tilemap

import (
	"fmt"

	"github.com/milk9111/tilepaint/assets"
	"gopkg.in/yaml.v3"
)

// Dump is the flat, exportable form of a map.
type Dump struct {
	TileScale int         `yaml:"tile_scale"`
	Layers    int         `yaml:"layers"`
	Tiles     []DumpEntry `yaml:"tiles"`
}

// DumpEntry is one placed tile, referenced by category and index.
type DumpEntry struct {
	Category string `yaml:"category"`
	Index    int    `yaml:"index"`
	Layer    int    `yaml:"layer"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
}

// Resolver looks up the image handle for a (category, index) pair.
type Resolver interface {
	Lookup(category string, index int) (*assets.Image, bool)
}

// Export flattens the map in insertion order.
func (m *Map) Export(scale, layers int) Dump {
	d := Dump{TileScale: scale, Layers: layers, Tiles: make([]DumpEntry, 0, len(m.tiles))}
	for _, p := range m.tiles {
		d.Tiles = append(d.Tiles, DumpEntry{
			Category: p.Tile.Image.Category,
			Index:    p.Tile.Image.Index,
			Layer:    p.Tile.Layer,
			X:        p.At.X,
			Y:        p.At.Y,
		})
	}
	return d
}

// ImportResult counts what happened to each dump entry.
type ImportResult struct {
	Placed     int
	Duplicate  int
	Unresolved int
	BadLayer   int
	BadCoord   int
}

// Import replays the dump entries through Place, in order. Entries whose
// image cannot be resolved, whose layer is outside [0, layers) or whose
// cell has a negative coordinate are skipped.
func Import(d Dump, r Resolver, layers int, m *Map) ImportResult {
	var res ImportResult
	for _, e := range d.Tiles {
		if e.Layer < 0 || e.Layer >= layers {
			res.BadLayer++
			continue
		}
		if e.X < 0 || e.Y < 0 {
			res.BadCoord++
			continue
		}
		img, ok := r.Lookup(e.Category, e.Index)
		if !ok {
			res.Unresolved++
			continue
		}
		if m.Place(Tile{Image: img, Layer: e.Layer}, Coord{X: e.X, Y: e.Y}) {
			res.Placed++
		} else {
			res.Duplicate++
		}
	}
	return res
}

// Marshal encodes the dump as YAML.
func (d Dump) Marshal() ([]byte, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("tilemap: marshal dump: %w", err)
	}
	return b, nil
}

// ParseDump decodes a YAML dump.
func ParseDump(data []byte) (Dump, error) {
	var d Dump
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dump{}, fmt.Errorf("tilemap: unmarshal dump: %w", err)
	}
	return d, nil
}
