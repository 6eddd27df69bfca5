// Package layers tracks the active layer and composites the layer stack.
package layers

// Cursor is the 1-based layer number shown to the user. Painting happens on
// layer index N - cursor, so cursor 1 paints the topmost layer.
type Cursor struct {
	n   int
	cur int
}

func NewCursor(n int) *Cursor {
	return &Cursor{n: n, cur: 1}
}

func (c *Cursor) Current() int { return c.cur }

func (c *Cursor) Count() int { return c.n }

// Next advances the cursor, wrapping from N to 1.
func (c *Cursor) Next() {
	if c.cur >= c.n {
		c.cur = 0
	}
	c.cur++
}

// Prev moves the cursor back, wrapping from 1 to N.
func (c *Cursor) Prev() {
	if c.cur <= 1 {
		c.cur = c.n + 1
	}
	c.cur--
}

// PaintLayer is the layer index new tiles are placed on.
func (c *Cursor) PaintLayer() int {
	return c.n - c.cur
}

// Latch turns held keys into single presses. Only one key-down is accepted
// until some key is released.
type Latch struct {
	held bool
}

// Down reports whether a key-down should be acted on.
func (l *Latch) Down() bool {
	if l.held {
		return false
	}
	l.held = true
	return true
}

// Up re-arms the latch.
func (l *Latch) Up() {
	l.held = false
}
