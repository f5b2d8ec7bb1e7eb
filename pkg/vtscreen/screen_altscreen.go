package vtscreen

// activeSavepoints returns the SavepointStack for the currently active
// buffer.
func (s *Screen) activeSavepoints() *SavepointStack {
	if s.isMain() {
		return &s.mainSavepoints
	}
	return &s.altSavepoints
}

// toggleAltScreen switches between the main and alternate screen.
// Entering alt clears it, saves the cursor on the main stack, and
// homes the cursor; leaving alt restores the most recent savepoint
// from the main stack. This asymmetric save/restore path is distinct
// from DECSC/DECRC even though it shares the same stack storage
// (spec §9).
func (s *Screen) toggleAltScreen() {
	toAlt := s.isMain()
	if toAlt {
		s.altLineBuf.ClearAll()
		s.SaveCursor()
		s.linebuf = s.altLineBuf
		s.tabstops = s.altTabstops
		s.CursorPosition(1, 1)
		s.cursor.Reset()
	} else {
		s.linebuf = s.mainLineBuf
		s.tabstops = s.mainTabstops
		s.RestoreCursor()
	}
	s.callbacks.BufToggled(s.isMain())
	s.isDirty = true
}

// ToggleAltScreen is the public entry point for DECSET/DECRST 1049
// and similar alternate-screen switches.
func (s *Screen) ToggleAltScreen() { s.toggleAltScreen() }

// SaveCursor pushes cursor + DECOM/DECAWM/DECSCNM + charset state onto
// the active buffer's savepoint stack (DECSC).
func (s *Screen) SaveCursor() {
	s.activeSavepoints().Push(Savepoint{
		Cursor:  s.cursor,
		DECOM:   s.modes.DECOM,
		DECAWM:  s.modes.DECAWM,
		DECSCNM: s.modes.DECSCNM,
		Charset: s.charset,
	})
}

// RestoreCursor pops the active buffer's savepoint stack and restores
// it (DECRC). If the stack is empty, the cursor goes home and DECOM,
// charsets, and DECSCNM reset to defaults.
func (s *Screen) RestoreCursor() {
	sp, ok := s.activeSavepoints().Pop()
	if !ok {
		s.CursorPosition(1, 1)
		s.cursorChanged = true
		s.modes.DECOM = false
		s.charset.Reset()
		s.modes.DECSCNM = false
		return
	}
	s.charset = sp.Charset
	s.modes.DECOM = sp.DECOM
	s.modes.DECAWM = sp.DECAWM
	s.modes.DECSCNM = sp.DECSCNM
	s.cursor = sp.Cursor
	s.EnsureBounds(false)
}
