package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilepaint/editor"
)

// inputState remembers where the current left-button press started.
type inputState struct {
	press    image.Point
	pressed  bool
	down, up []ebiten.Key
}

func (s *inputState) frame(uiHovered bool) editor.Frame {
	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)

	just := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if just {
		s.press = cursor
	}
	s.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	s.down = inpututil.AppendJustPressedKeys(s.down[:0])
	s.up = inpututil.AppendJustReleasedKeys(s.up[:0])

	return editor.Frame{
		Cursor:      cursor,
		Pressed:     s.pressed,
		Press:       s.press,
		JustPressed: just,
		UIHovered:   uiHovered,
		Keys:        editor.KeyEvents(keyNames(s.down), keyNames(s.up)),
		FPS:         ebiten.ActualFPS(),
	}
}

func keyNames(keys []ebiten.Key) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}
