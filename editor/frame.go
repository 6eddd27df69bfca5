package editor

import "image"

// KeyEvent is a key transition named by its ebiten key name.
type KeyEvent struct {
	Key  string
	Down bool
}

// Frame is the input observed during one tick.
type Frame struct {
	Cursor image.Point
	// Pressed is true while the left button is held; Press is where the
	// press started.
	Pressed     bool
	Press       image.Point
	JustPressed bool
	// UIHovered is set when the pointer is over a toolbar widget.
	UIHovered bool
	Keys      []KeyEvent
	FPS       float64
}

// KeyEvents orders one tick's key transitions. Releases of keys held from
// earlier ticks come first, then presses, then releases of keys tapped
// within the same tick.
func KeyEvents(down, up []string) []KeyEvent {
	tapped := make(map[string]bool, len(down))
	for _, k := range down {
		tapped[k] = true
	}
	var events []KeyEvent
	for _, k := range up {
		if !tapped[k] {
			events = append(events, KeyEvent{Key: k})
		}
	}
	for _, k := range down {
		events = append(events, KeyEvent{Key: k, Down: true})
	}
	for _, k := range up {
		if tapped[k] {
			events = append(events, KeyEvent{Key: k})
		}
	}
	return events
}
