package vtscreen

// Cursor shapes reported/set by DECSCUSR.
const (
	CursorBlock       = 0
	CursorUnderline   = 1
	CursorBeam        = 2
	CursorUnspecified = 3
)

// Cursor holds the screen position and the graphic-rendition state
// applied to subsequently drawn cells.
type Cursor struct {
	X, Y int

	Fg           Color
	Bg           Color
	DecorationFg Color
	Bold         bool
	Italic       bool
	Reverse      bool
	Strike       bool
	Decoration   int

	Shape   int
	Blink   bool
	Visible bool
}

// NewCursor returns a cursor at the origin with default rendition,
// visible, per DECTCEM's default-on state.
func NewCursor() Cursor {
	return Cursor{Shape: CursorUnspecified, Visible: true}
}

// Reset returns the cursor to (0,0) with default rendition, matching
// cursor_reset in screen.c.
func (c *Cursor) Reset() {
	*c = NewCursor()
}

// ResetDisplayAttrs clears rendition state (SGR code 0) without
// touching position.
func (c *Cursor) ResetDisplayAttrs() {
	c.Fg = DefaultColor
	c.Bg = DefaultColor
	c.DecorationFg = DefaultColor
	c.Bold = false
	c.Italic = false
	c.Reverse = false
	c.Strike = false
	c.Decoration = DecorationNone
}

// cellTemplate returns a blank Cell carrying the cursor's current
// rendition, used to fill cells produced by drawing or erasing.
func (c *Cursor) cellTemplate() Cell {
	return BlankWithRendition(c.Fg, c.Bg, c.DecorationFg, c.Bold, c.Italic, c.Reverse, c.Strike, c.Decoration)
}

// renditionCell returns a Cell for the given glyph/width carrying the
// cursor's current rendition.
func (c *Cursor) renditionCell(ch rune, width int) Cell {
	cell := c.cellTemplate()
	cell.Codepoint = ch
	cell.Width = width
	return cell
}
