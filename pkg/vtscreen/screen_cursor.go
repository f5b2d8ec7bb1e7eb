package vtscreen

// EnsureBounds clamps the cursor into [0,columns-1]×[top,bottom],
// where (top,bottom) is the scrolling margin if forceMargins or DECOM
// is set, else the full screen.
func (s *Screen) EnsureBounds(forceMargins bool) {
	top, bottom := 0, s.lines-1
	if forceMargins || s.modes.DECOM {
		top, bottom = s.marginTop, s.marginBottom
	}
	if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	if s.cursor.Y < top {
		s.cursor.Y = top
	}
	if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

// CursorPosition moves the cursor to 1-based (line, column),
// honoring DECOM addressing.
func (s *Screen) CursorPosition(line, column int) {
	if line == 0 {
		line = 1
	}
	line--
	if column == 0 {
		column = 1
	}
	column--
	if s.modes.DECOM {
		line += s.marginTop
		if line < s.marginTop {
			line = s.marginTop
		}
		if line > s.marginBottom {
			line = s.marginBottom
		}
	}
	x, y := s.cursor.X, s.cursor.Y
	s.cursor.X = column
	s.cursor.Y = line
	s.EnsureBounds(false)
	if x != s.cursor.X || y != s.cursor.Y {
		s.cursorChanged = true
	}
}

// CursorToLine moves the cursor to the given 1-based line, keeping
// its current column (screen_cursor_to_line).
func (s *Screen) CursorToLine(line int) {
	s.CursorPosition(line, s.cursor.X+1)
}

// CursorToColumn moves the cursor to the given 1-based column.
func (s *Screen) CursorToColumn(column int) {
	if column < 1 {
		column = 1
	}
	x := column - 1
	if x != s.cursor.X {
		s.cursor.X = x
		s.EnsureBounds(false)
		s.cursorChanged = true
	}
}

// cursorBack moves the cursor by count columns in moveDirection
// (-1 back, +1 forward), saturating at the margins.
func (s *Screen) cursorBack(count, moveDirection int) {
	if count == 0 {
		count = 1
	}
	x := s.cursor.X
	if moveDirection < 0 && count > s.cursor.X {
		s.cursor.X = 0
	} else {
		s.cursor.X += moveDirection * count
	}
	s.EnsureBounds(false)
	if x != s.cursor.X {
		s.cursorChanged = true
	}
}

// CursorBack moves the cursor left by count columns.
func (s *Screen) CursorBack(count int) { s.cursorBack(count, -1) }

// CursorForward moves the cursor right by count columns.
func (s *Screen) CursorForward(count int) { s.cursorBack(count, 1) }

// Backspace moves the cursor back one column (never wraps).
func (s *Screen) Backspace() { s.cursorBack(1, -1) }

// cursorUp moves the cursor by count rows in moveDirection (-1 up,
// +1 down), optionally performing a carriage return.
func (s *Screen) cursorUp(count int, carriageReturn bool, moveDirection int) {
	if count == 0 {
		count = 1
	}
	x, y := s.cursor.X, s.cursor.Y
	if moveDirection < 0 && count > s.cursor.Y {
		s.cursor.Y = 0
	} else {
		s.cursor.Y += moveDirection * count
	}
	s.EnsureBounds(true)
	if carriageReturn {
		s.cursor.X = 0
	}
	if x != s.cursor.X || y != s.cursor.Y {
		s.cursorChanged = true
	}
}

// CursorUp moves the cursor up count rows.
func (s *Screen) CursorUp(count int) { s.cursorUp(count, false, -1) }

// CursorUp1 moves the cursor up count rows and to column 0 (CNL's
// reverse, used by some escape sequences).
func (s *Screen) CursorUp1(count int) { s.cursorUp(count, true, -1) }

// CursorDown moves the cursor down count rows.
func (s *Screen) CursorDown(count int) { s.cursorUp(count, false, 1) }

// CursorDown1 moves the cursor down count rows and to column 0 (CNL).
func (s *Screen) CursorDown1(count int) { s.cursorUp(count, true, 1) }

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	if s.cursor.X != 0 {
		s.cursor.X = 0
		s.cursorChanged = true
	}
}

// Tab advances the cursor to the smallest tabstop greater than its
// current column, or to the last column if there are none left.
func (s *Screen) Tab() {
	found := 0
	hasFound := false
	for i := s.cursor.X + 1; i < s.columns; i++ {
		if s.tabstops[i] {
			found = i
			hasFound = true
			break
		}
	}
	if !hasFound {
		found = s.columns - 1
	}
	if found != s.cursor.X {
		s.cursor.X = found
		s.cursorChanged = true
	}
}

// Backtab moves the cursor back count tabstops.
func (s *Screen) Backtab(count int) {
	if count == 0 {
		count = 1
	}
	before := s.cursor.X
	for count > 0 && s.cursor.X > 0 {
		count--
		found := -1
		for i := s.cursor.X - 1; i >= 0; i-- {
			if s.tabstops[i] {
				found = i
				break
			}
		}
		if found >= 0 {
			s.cursor.X = found
		} else {
			s.cursor.X = 0
		}
	}
	if before != s.cursor.X {
		s.cursorChanged = true
	}
}

// SetTabStop marks the cursor's current column as a tabstop.
func (s *Screen) SetTabStop() {
	if s.cursor.X < s.columns {
		s.tabstops[s.cursor.X] = true
	}
}

// ClearTabStop clears tabstops per how: 0 clears the column at the
// cursor, 3 clears all, 2 is a no-op, any other value logs an
// UnsupportedControl diagnostic.
func (s *Screen) ClearTabStop(how int) {
	switch how {
	case 0:
		if s.cursor.X < s.columns {
			s.tabstops[s.cursor.X] = false
		}
	case 2:
		// no-op
	case 3:
		for i := range s.tabstops {
			s.tabstops[i] = false
		}
	default:
		s.logger.Printf("vtscreen: unsupported clear tab stop mode: %d", how)
	}
}
