package main

import (
	"slices"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/tilepaint/editor"
)

// ToolBar contains the radio-group state for the tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	// suppress is set while the bar follows a keyboard tool change.
	suppress bool
}

func (tb *ToolBar) SetTool(t editor.Tool) {
	idx := slices.Index(editor.Tools, t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.suppress = true
	tb.group.SetActive(tb.buttons[idx])
	tb.suppress = false
}
