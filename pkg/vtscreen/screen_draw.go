package vtscreen

// Draw accepts one codepoint, updates cells, and advances the cursor
// (spec §4.1).
func (s *Screen) Draw(och rune) {
	if isIgnoredChar(och) {
		return
	}
	ch := s.charset.translate(och)

	x, y := s.cursor.X, s.cursor.Y
	w := safeWcwidth(ch)

	if s.columns-s.cursor.X < w {
		if s.modes.DECAWM {
			s.linebuf.Line(s.cursor.Y).Continued = true
			s.CarriageReturn()
			s.Linefeed()
		} else {
			s.cursor.X = s.columns - w
		}
	}

	if w > 0 {
		line := s.linebuf.Line(s.cursor.Y)
		if s.modes.IRM {
			line.RightShift(s.cursor.X, w)
		}
		line.Cells[s.cursor.X] = s.cursor.renditionCell(ch, w)
		s.cursor.X++
		if w == 2 {
			line.Cells[s.cursor.X] = Cell{Width: WidthZero}
			s.cursor.X++
		}
		s.isDirty = true
	} else if isCombiningChar(ch) {
		if s.cursor.X > 0 {
			line := s.linebuf.Line(s.cursor.Y)
			line.Cells[s.cursor.X-1].addCombining(ch)
			s.isDirty = true
		} else if s.cursor.Y > 0 {
			line := s.linebuf.Line(s.cursor.Y - 1)
			line.Cells[s.columns-1].addCombining(ch)
			s.isDirty = true
		}
	}

	if x != s.cursor.X || y != s.cursor.Y {
		s.cursorChanged = true
	}
}

// AlignmentDisplay fills every cell with 'E', resets margins to the
// full screen, and homes the cursor (DECALN). Per spec.md's resolved
// Open Question this resets margin_bottom to lines-1, correcting
// kitty's columns-1 typo.
func (s *Screen) AlignmentDisplay() {
	s.marginTop = 0
	s.marginBottom = s.lines - 1
	s.CursorPosition(1, 1)
	s.linebuf.ClearAllWithGlyph('E')
	s.isDirty = true
}
