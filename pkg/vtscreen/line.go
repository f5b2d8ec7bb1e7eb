package vtscreen

// Line is a fixed-width ordered sequence of Cells plus the
// soft-wrap continuation flag used by reflow.
type Line struct {
	Cells     []Cell
	Continued bool
}

// NewLine returns a blank line of the given width.
func NewLine(columns int) Line {
	cells := make([]Cell, columns)
	for i := range cells {
		cells[i] = Blank()
	}
	return Line{Cells: cells}
}

// Clear resets every cell to blank and clears the continuation flag.
func (l *Line) Clear() {
	for i := range l.Cells {
		l.Cells[i] = Blank()
	}
	l.Continued = false
}

// ClearRange blanks cells [start, start+n) with the given rendition
// template (attributes preserved, glyph cleared).
func (l *Line) ClearRange(start, n int, template Cell) {
	end := start + n
	if end > len(l.Cells) {
		end = len(l.Cells)
	}
	for i := start; i < end; i++ {
		if i < 0 {
			continue
		}
		l.Cells[i] = template
	}
}

// ClearTextRange blanks only the glyph content of cells [start,
// start+n), leaving existing attributes in place (the "private" erase
// variants in spec §4.5).
func (l *Line) ClearTextRange(start, n int) {
	end := start + n
	if end > len(l.Cells) {
		end = len(l.Cells)
	}
	for i := start; i < end; i++ {
		if i < 0 {
			continue
		}
		l.Cells[i].Codepoint = 0
		l.Cells[i].NCombining = 0
		l.Cells[i].Width = WidthNorm
	}
}

// RightShift shifts cells starting at x right by n columns; cells that
// fall off the right edge are discarded, and the vacated [x, x+n) run
// is left as whatever was previously there (the caller overwrites it).
func (l *Line) RightShift(x, n int) {
	cols := len(l.Cells)
	if x >= cols || n <= 0 {
		return
	}
	if x+n > cols {
		n = cols - x
	}
	copy(l.Cells[x+n:cols], l.Cells[x:cols-n])
}

// LeftShift shifts cells starting at x+n left to x, discarding the
// [x, x+n) run; the vacated tail is left for the caller to blank.
func (l *Line) LeftShift(x, n int) {
	cols := len(l.Cells)
	if x >= cols || n <= 0 {
		return
	}
	if x+n > cols {
		n = cols - x
	}
	copy(l.Cells[x:cols-n], l.Cells[x+n:cols])
}

// Length returns the index one past the last non-blank cell, used by
// resize to decide whether a shrunk row needs to be pushed onto a new
// line (spec: "if ... line_length(...) > columns").
func (l *Line) Length() int {
	for i := len(l.Cells) - 1; i >= 0; i-- {
		if !l.Cells[i].IsEmpty() {
			return i + 1
		}
	}
	return 0
}
