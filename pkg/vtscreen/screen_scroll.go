package vtscreen

// indexUp rotates the scrolling region [top,bottom] up by one line,
// adding the displaced top line to history when the active buffer is
// main and there is no bottom margin in effect, then clears the new
// bottom row.
func (s *Screen) indexUp(top, bottom int) {
	s.linebuf.Index(top, bottom)
	if s.isMain() && bottom == s.lines-1 {
		line := s.linebuf.Line(bottom)
		s.history.Add(*line)
		s.historyLineAddedCount++
	}
	s.linebuf.ClearLine(bottom)
	s.isDirty = true
}

// indexDown is the inverse: rotates [top,bottom] down by one line and
// clears the new top row. Never touches history.
func (s *Screen) indexDown(top, bottom int) {
	s.linebuf.ReverseIndex(top, bottom)
	s.linebuf.ClearLine(top)
	s.isDirty = true
}

// Index moves the cursor down one line, scrolling the screen within
// the margins if the cursor is already on the bottom margin.
func (s *Screen) Index() {
	top, bottom := s.marginTop, s.marginBottom
	if s.cursor.Y == bottom {
		s.indexUp(top, bottom)
	} else {
		s.CursorDown(1)
	}
}

// Scroll scrolls the screen up by count lines without moving the cursor.
func (s *Screen) Scroll(count int) {
	count = minInt(s.lines, count)
	top, bottom := s.marginTop, s.marginBottom
	for i := 0; i < count; i++ {
		s.indexUp(top, bottom)
	}
}

// ReverseIndex moves the cursor up one line, scrolling the screen
// within the margins if the cursor is already on the top margin.
func (s *Screen) ReverseIndex() {
	top, bottom := s.marginTop, s.marginBottom
	if s.cursor.Y == top {
		s.indexDown(top, bottom)
	} else {
		s.cursorUp(1, false, -1)
	}
}

// ReverseScroll scrolls the screen down by count lines without moving
// the cursor.
func (s *Screen) ReverseScroll(count int) {
	count = minInt(s.lines, count)
	top, bottom := s.marginTop, s.marginBottom
	for i := 0; i < count; i++ {
		s.indexDown(top, bottom)
	}
}

// Linefeed performs Index, followed by a carriage return if LNM is set.
func (s *Screen) Linefeed() {
	s.Index()
	if s.modes.LNM {
		s.CarriageReturn()
	}
	s.EnsureBounds(false)
}

// SetMargins sets the scrolling region (1-based, DECSTBM). Zero
// values mean "start"/"end". The region must span at least two rows
// or the call is a no-op. The cursor returns home afterward.
func (s *Screen) SetMargins(top, bottom int) {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = s.lines
	}
	top = minInt(s.lines, top)
	bottom = minInt(s.lines, bottom)
	top--
	bottom--
	if bottom > top {
		s.marginTop = top
		s.marginBottom = bottom
		s.CursorPosition(1, 1)
	}
}
