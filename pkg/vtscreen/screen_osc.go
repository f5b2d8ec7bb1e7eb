package vtscreen

// Bell is the bare-control-code handler for BEL (0x07), alongside
// CarriageReturn/Linefeed/Tab/Backspace: the parser collaborator calls
// it directly rather than routing it through Draw.
func (s *Screen) Bell() { s.callbacks.Bell() }

// SetTitle / SetIcon forward an OSC 0/1/2 window-title or icon-name
// change to the host; the screen model carries no title state itself.
func (s *Screen) SetTitle(title string) { s.callbacks.TitleChanged(title) }
func (s *Screen) SetIcon(icon string)   { s.callbacks.IconChanged(icon) }

// SetDynamicColor forwards an OSC 10-19/104 dynamic-color set/query to
// the host. An empty value means "reset to default".
func (s *Screen) SetDynamicColor(code uint32, value string) {
	s.callbacks.SetDynamicColor(code, value)
}

// SetColorTableColor forwards an OSC 4/104 palette-entry set/query to
// the host. An empty value means "reset to default".
func (s *Screen) SetColorTableColor(code uint32, value string) {
	s.callbacks.SetColorTableColor(code, value)
}

// RequestCapabilities forwards an XTGETTCAP query (DCS +q) unmodified
// to the host.
func (s *Screen) RequestCapabilities(query string) {
	s.callbacks.RequestCapabilities(query)
}

// SetCursorStyle implements DECSCUSR: mode selects shape and blink per
// the usual 0-6 encoding (0/1 blinking block ... 6 steady beam);
// secondary is accepted but unused, carried for parser symmetry with
// other "q"-terminated sequences that take a leading private marker.
func (s *Screen) SetCursorStyle(mode uint, secondary byte) {
	shape := CursorBlock
	blink := true
	switch mode {
	case 0, 1:
		shape, blink = CursorBlock, true
	case 2:
		shape, blink = CursorBlock, false
	case 3:
		shape, blink = CursorUnderline, true
	case 4:
		shape, blink = CursorUnderline, false
	case 5:
		shape, blink = CursorBeam, true
	case 6:
		shape, blink = CursorBeam, false
	default:
		s.logger.Printf("vtscreen: unsupported cursor style: %d", mode)
		return
	}
	s.cursor.Shape = shape
	s.cursor.Blink = blink
	s.cursorChanged = true
}

// NormalKeypadMode / AlternateKeypadMode implement DECKPNM/DECKPAM.
// The screen model doesn't distinguish keypad transmission modes
// itself (that's the input-encoding layer's job), so these are
// accepted no-ops kept for command-surface completeness.
func (s *Screen) NormalKeypadMode()    {}
func (s *Screen) AlternateKeypadMode() {}

// ChangeCharset switches which of G0/G1 is active (SI/SO).
func (s *Screen) ChangeCharset(which int) { s.charset.Change(which) }

// DesignateCharset assigns a charset to G0 or G1 (SCS).
func (s *Screen) DesignateCharset(which int, cs Charset) { s.charset.Designate(which, cs) }

// UseLatin1 switches the UTF-8 decoder between UTF-8 and ISO-8859-1
// input, notifying the host so it can mirror the change.
func (s *Screen) UseLatin1(use bool) {
	if s.charset.UseLatin1 != use {
		s.charset.UseLatin1 = use
		s.callbacks.UseUTF8(!use)
	}
}
