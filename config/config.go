// Package config holds editor settings. Defaults can be overlaid by a YAML
// file and then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Keys names key bindings by ebiten key name ("Q", "Digit1", "F5").
type Keys struct {
	NextLayer string `yaml:"next_layer"`
	PrevLayer string `yaml:"prev_layer"`
	Place     string `yaml:"place"`
	Delete    string `yaml:"delete"`
	Fill      string `yaml:"fill"`
	Select    string `yaml:"select"`
	Export    string `yaml:"export"`
	Import    string `yaml:"import"`
	Snapshot  string `yaml:"snapshot"`
}

type Config struct {
	DataDir         string   `yaml:"data_dir"`
	WindowWidth     int      `yaml:"window_width"`
	WindowHeight    int      `yaml:"window_height"`
	PaletteWidth    int      `yaml:"palette_width"`
	TileScale       int      `yaml:"tile_scale"`
	Layers          int      `yaml:"layers"`
	TickRate        int      `yaml:"tick_rate"`
	LargeThumbnails []string `yaml:"large_thumbnails"`
	SnapshotDir     string   `yaml:"snapshot_dir"`
	Keys            Keys     `yaml:"keys"`
	Debug           bool     `yaml:"debug"`
}

func Default() Config {
	return Config{
		DataDir:         "./data",
		WindowWidth:     1000,
		WindowHeight:    800,
		PaletteWidth:    200,
		TileScale:       16,
		Layers:          10,
		TickRate:        100,
		LargeThumbnails: []string{"foliage", "decoration"},
		SnapshotDir:     "snapshots",
		Keys: Keys{
			NextLayer: "Q",
			PrevLayer: "E",
			Place:     "Digit1",
			Delete:    "Digit2",
			Fill:      "Digit3",
			Select:    "Digit4",
			Export:    "F5",
			Import:    "F9",
			Snapshot:  "F12",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err = Parse(data, cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data onto base. Fields absent from data keep their
// base value.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.LargeThumbnails = slices.Clone(base.LargeThumbnails)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("config: invalid")

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}
	positive("window_width", c.WindowWidth)
	positive("window_height", c.WindowHeight)
	positive("palette_width", c.PaletteWidth)
	positive("tile_scale", c.TileScale)
	positive("layers", c.Layers)
	positive("tick_rate", c.TickRate)
	if c.PaletteWidth >= c.WindowWidth {
		errs = append(errs, fmt.Errorf("%w: palette_width %d leaves no canvas in a %d wide window", ErrInvalid, c.PaletteWidth, c.WindowWidth))
	}
	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf("%w: data_dir is empty", ErrInvalid))
	}
	return errors.Join(errs...)
}

// CanvasSize is the size of each layer surface.
func (c Config) CanvasSize() image.Point {
	return image.Pt(c.WindowWidth-c.PaletteWidth, c.WindowHeight)
}

// Overrides are values given on the command line. Zero values are unset.
type Overrides struct {
	DataDir   string
	Layers    int
	TileScale int
	Debug     bool
}

func (o Overrides) Apply(c *Config) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.Layers != 0 {
		c.Layers = o.Layers
	}
	if o.TileScale != 0 {
		c.TileScale = o.TileScale
	}
	if o.Debug {
		c.Debug = true
	}
}

// ApplyLive copies the settings that can change while the editor runs.
func (c *Config) ApplyLive(n Config) {
	c.Keys = n.Keys
	c.LargeThumbnails = slices.Clone(n.LargeThumbnails)
	c.TickRate = n.TickRate
}

// RestartRequired lists the settings that differ between c and n but only
// take effect on the next start.
func (c Config) RestartRequired(n Config) []string {
	var out []string
	if c.DataDir != n.DataDir {
		out = append(out, "data_dir")
	}
	if c.WindowWidth != n.WindowWidth || c.WindowHeight != n.WindowHeight {
		out = append(out, "window size")
	}
	if c.PaletteWidth != n.PaletteWidth {
		out = append(out, "palette_width")
	}
	if c.TileScale != n.TileScale {
		out = append(out, "tile_scale")
	}
	if c.Layers != n.Layers {
		out = append(out, "layers")
	}
	if c.SnapshotDir != n.SnapshotDir {
		out = append(out, "snapshot_dir")
	}
	return out
}
