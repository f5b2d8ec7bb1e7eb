package vtscreen

// isPrivateMode reports whether code uses the DEC-private routing
// convention (pre-shifted left by 5; see the Mode* constants).
func isPrivateMode(code int) bool { return code >= 1<<5 }

// SetMode enables the named mode (ANSI SM or DEC private DECSET).
func (s *Screen) SetMode(code int) { s.dispatchMode(code, true) }

// ResetMode disables the named mode (ANSI RM or DEC private DECRST).
func (s *Screen) ResetMode(code int) { s.dispatchMode(code, false) }

func (s *Screen) dispatchMode(code int, enable bool) {
	switch code {
	case ModeLNM:
		s.modes.LNM = enable
	case ModeIRM:
		s.modes.IRM = enable
	case ModeDECCKM:
		s.modes.DECCKM = enable
	case ModeDECARM:
		s.modes.DECARM = enable
	case ModeDECAWM:
		s.modes.DECAWM = enable
	case ModeDECSCLM, ModeDECNRCM:
		// accepted, no observable effect in this screen model
	case ModeDECTCEM:
		s.cursor.Visible = enable
		s.cursorChanged = true
	case ModeDECSCNM:
		if s.modes.DECSCNM != enable {
			s.modes.DECSCNM = enable
			s.isDirty = true
		}
	case ModeDECOM:
		s.modes.DECOM = enable
		s.CursorPosition(1, 1)
	case ModeDECCOLM:
		s.modes.DECCOLM = enable
		s.EraseInDisplay(2, false)
		s.CursorPosition(1, 1)
	case ModeBracketedPaste:
		s.modes.BracketedPaste = enable
	case ModeExtendedKeyboard:
		s.modes.ExtendedKeyboard = enable
	case ModeFocusTracking:
		s.modes.FocusTracking = enable
	case ModeCursorBlink:
		s.cursor.Blink = enable
		s.cursorChanged = true
	case ModeAlternateScreen:
		if s.isMain() == enable {
			s.toggleAltScreen()
		}
	case ModeMouseButtonTracking:
		s.setMouseTrackingMode(enable, MouseTrackingButton)
	case ModeMouseMotionTracking:
		s.setMouseTrackingMode(enable, MouseTrackingMotion)
	case ModeMouseMoveTracking:
		s.setMouseTrackingMode(enable, MouseTrackingAny)
	case ModeMouseUTF8:
		s.setMouseTrackingProtocol(enable, MouseProtocolUTF8)
	case ModeMouseSGR:
		s.setMouseTrackingProtocol(enable, MouseProtocolSGR)
	case ModeMouseURXVT:
		s.setMouseTrackingProtocol(enable, MouseProtocolURXVT)
	case ModeStyledUnderlines:
		// accepted, underline styling is already always available
	default:
		private := isPrivateMode(code)
		num := code
		if private {
			num = code >> 5
		}
		s.logger.Printf("vtscreen: unsupported mode private=%v code=%d enable=%v", private, num, enable)
	}
}

func (s *Screen) setMouseTrackingMode(enable bool, mode int) {
	if enable {
		s.modes.MouseTrackingMode = mode
	} else if s.modes.MouseTrackingMode == mode {
		s.modes.MouseTrackingMode = MouseTrackingOff
	}
}

func (s *Screen) setMouseTrackingProtocol(enable bool, protocol int) {
	if enable {
		s.modes.MouseTrackingProtocol = protocol
	} else if s.modes.MouseTrackingProtocol == protocol {
		s.modes.MouseTrackingProtocol = MouseProtocolNormal
	}
}
