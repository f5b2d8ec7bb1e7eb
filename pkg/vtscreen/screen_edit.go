package vtscreen

// InsertLines shifts rows down within the scrolling margins when the
// cursor is inside them, filling the vacated rows blank.
func (s *Screen) InsertLines(count int) {
	bottom := s.marginBottom
	if count == 0 {
		count = 1
	}
	if s.marginTop <= s.cursor.Y && s.cursor.Y <= bottom {
		s.linebuf.InsertLines(count, s.cursor.Y, bottom)
		s.isDirty = true
		s.CarriageReturn()
	}
}

// DeleteLines shifts rows up within the scrolling margins when the
// cursor is inside them, filling the vacated rows blank.
func (s *Screen) DeleteLines(count int) {
	bottom := s.marginBottom
	if count == 0 {
		count = 1
	}
	if s.marginTop <= s.cursor.Y && s.cursor.Y <= bottom {
		s.linebuf.DeleteLines(count, s.cursor.Y, bottom)
		s.isDirty = true
		s.CarriageReturn()
	}
}

// InsertCharacters right-shifts the current row from the cursor by
// min(columns-x, count), clearing the exposed cells with the current
// rendition.
func (s *Screen) InsertCharacters(count int) {
	if count == 0 {
		count = 1
	}
	x := s.cursor.X
	num := minInt(s.columns-x, count)
	if num <= 0 {
		return
	}
	line := s.linebuf.Line(s.cursor.Y)
	line.RightShift(x, num)
	line.ClearRange(x, num, s.cursor.cellTemplate())
	s.isDirty = true
}

// DeleteCharacters left-shifts the current row from the cursor by
// min(columns-x, count), clearing the last num cells.
func (s *Screen) DeleteCharacters(count int) {
	if count == 0 {
		count = 1
	}
	x := s.cursor.X
	num := minInt(s.columns-x, count)
	if num <= 0 {
		return
	}
	line := s.linebuf.Line(s.cursor.Y)
	line.LeftShift(x, num)
	line.ClearRange(s.columns-num, num, s.cursor.cellTemplate())
	s.isDirty = true
}

// EraseCharacters overwrites min(columns-x, count) cells at the
// cursor with blank + current rendition, without shifting.
func (s *Screen) EraseCharacters(count int) {
	if count == 0 {
		count = 1
	}
	x := s.cursor.X
	num := minInt(s.columns-x, count)
	line := s.linebuf.Line(s.cursor.Y)
	line.ClearRange(x, num, s.cursor.cellTemplate())
	s.isDirty = true
}

// EraseInLine erases part of the cursor's row. how: 0 = cursor to end
// (inclusive), 1 = start to cursor (inclusive), 2 = whole line, other
// = no-op. If private, only glyph content is cleared, attributes are
// preserved; otherwise blanks carry the current rendition.
func (s *Screen) EraseInLine(how int, private bool) {
	var start, n int
	switch how {
	case 0:
		start, n = s.cursor.X, s.columns-s.cursor.X
	case 1:
		start, n = 0, s.cursor.X+1
	case 2:
		start, n = 0, s.columns
	default:
		return
	}
	if n <= 0 {
		return
	}
	line := s.linebuf.Line(s.cursor.Y)
	if private {
		line.ClearTextRange(start, n)
	} else {
		line.ClearRange(start, n, s.cursor.cellTemplate())
	}
	s.isDirty = true
}

// EraseInDisplay erases part of the display. how: 0 = cursor to end of
// screen, 1 = start of screen to cursor, 2 = whole display, other =
// no-op. When how != 2, also applies EraseInLine(how, private) to the
// cursor's row.
func (s *Screen) EraseInDisplay(how int, private bool) {
	var a, b int
	switch how {
	case 0:
		a, b = s.cursor.Y+1, s.lines
	case 1:
		a, b = 0, s.cursor.Y
	case 2:
		a, b = 0, s.lines
	default:
		return
	}
	if b > a {
		for i := a; i < b; i++ {
			line := s.linebuf.Line(i)
			if private {
				line.ClearTextRange(0, s.columns)
			} else {
				line.ClearRange(0, s.columns, s.cursor.cellTemplate())
			}
		}
		s.isDirty = true
	}
	if how != 2 {
		s.EraseInLine(how, private)
	}
}
