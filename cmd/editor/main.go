package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/editor"
	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/render/ebitensurface"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file, reloaded on change")
	dataDir := flag.String("data", "", "Data directory containing images/ and font/ (default ./data)")
	layerCount := flag.Int("layers", 0, "Number of layers (default 10)")
	tileScale := flag.Int("scale", 0, "Tile size in pixels (default 16)")
	debug := flag.Bool("debug", false, "Enable renderer debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.Overrides{DataDir: *dataDir, Layers: *layerCount, TileScale: *tileScale, Debug: *debug}.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if cfg.Debug {
		gg.SetLogger(slog.Default())
	}

	log.Println("Editor starting...")
	table, err := assets.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}
	log.Printf("Loaded %d asset categories from %s", len(table.Categories()), cfg.DataDir)

	fontData, fontPath, err := assets.LoadFont(cfg.DataDir)
	switch {
	case errors.Is(err, assets.ErrNoFont):
		log.Printf("No font in %s/font, using Go Regular", cfg.DataDir)
		fontData = goregular.TTF
	case err != nil:
		log.Fatalf("Failed to load font: %v", err)
	default:
		log.Printf("Using font %s", fontPath)
	}

	backend, err := ebitensurface.New(fontData)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	raster, err := render.NewRaster(fontData)
	if err != nil {
		log.Printf("Snapshots disabled: %v", err)
		raster = nil
	}

	var clip editor.Clipboard
	if c, err := newSystemClipboard(); err != nil {
		log.Printf("Clipboard unavailable, export and import disabled: %v", err)
	} else {
		clip = c
	}

	ed, err := editor.New(editor.Options{
		Assets:    table,
		Config:    cfg,
		Backend:   backend,
		Raster:    raster,
		Clipboard: clip,
	})
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}

	game := newGame(ed, backend)
	if *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Config watcher disabled: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Level Editor")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
