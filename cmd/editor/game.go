package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/editor"
	"github.com/milk9111/tilepaint/render/ebitensurface"
)

// Game adapts the editor to ebiten.
type Game struct {
	editor  *editor.Editor
	backend *ebitensurface.Backend
	ui      *ebitenui.UI
	toolBar *ToolBar
	input   inputState
	watcher *config.Watcher
}

func newGame(ed *editor.Editor, backend *ebitensurface.Backend) *Game {
	g := &Game{editor: ed, backend: backend}
	g.ui, g.toolBar = buildEditorUI(ed.SetTool, ed.Tool())
	ed.OnToolChange(g.toolBar.SetTool)
	return g
}

func (g *Game) Update() error {
	g.drainConfig()

	g.ui.Update()
	g.editor.Update(g.input.frame(ebuiinput.UIHovered))
	return nil
}

func (g *Game) drainConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Configs:
			if !ok {
				g.watcher = nil
				return
			}
			g.editor.Reload(cfg)
			ebiten.SetTPS(g.editor.Config().TickRate)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Config reload failed, keeping previous settings: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.editor.Draw(g.backend.Wrap(screen))
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.editor.Config()
	return cfg.WindowWidth, cfg.WindowHeight
}
