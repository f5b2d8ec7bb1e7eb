package vtscreen

import "fmt"

// ReportDeviceAttributes answers a mode 0 device-attributes request by
// writing the appropriate escape sequence to the child: DA2 when
// startModifier is '>', DA1 otherwise. Other modes get no reply.
func (s *Screen) ReportDeviceAttributes(mode uint, startModifier byte) {
	if mode != 0 {
		return
	}
	switch startModifier {
	case '>':
		s.writeToChild([]byte(fmt.Sprintf("\x1b[>%d;%dc", PrimaryVersion, SecondaryVersion)))
	default:
		s.writeToChild([]byte("\x1b[?62;c"))
	}
}

// ReportDeviceStatus answers a DSR request. which 5 reports OK status;
// which 6 reports the cursor position (CPR), wrapping onto the next
// row when the cursor sits past the last column and offsetting the
// reported row by the top margin whenever DECOM is active (regardless
// of whether the request used the private `?` form).
func (s *Screen) ReportDeviceStatus(which uint, private bool) {
	switch which {
	case 5:
		s.writeToChild([]byte("\x1b[0n"))
	case 6:
		x, y := s.cursor.X, s.cursor.Y
		if x >= s.columns {
			if y < s.lines-1 {
				x, y = 0, y+1
			} else {
				x--
			}
		}
		line, column := y+1, x+1
		if s.modes.DECOM {
			line -= s.marginTop
		}
		intro := "\x1b["
		if private {
			intro = "\x1b[?"
		}
		s.writeToChild([]byte(fmt.Sprintf("%s%d;%dR", intro, line, column)))
	default:
		s.logger.Printf("vtscreen: unsupported device status report: %d", which)
	}
}

// ReportModeStatus answers a DECRQM query with a DECRPM reply
// describing whether mode `which` is set, reset, or unrecognized.
func (s *Screen) ReportModeStatus(which uint, private bool) {
	status := 0 // 0 = not recognized
	if v, ok := s.queryMode(int(which), private); ok {
		if v {
			status = 1
		} else {
			status = 2
		}
	}
	if private {
		s.writeToChild([]byte(fmt.Sprintf("\x1b[?%d;%d$y", which, status)))
	} else {
		s.writeToChild([]byte(fmt.Sprintf("\x1b[%d;%d$y", which, status)))
	}
}

// queryMode reports the current boolean value of a mode named by its
// bare (non-shifted) numeric code, for DECRQM support.
func (s *Screen) queryMode(code int, private bool) (bool, bool) {
	if !private {
		switch code {
		case 20:
			return s.modes.LNM, true
		case 4:
			return s.modes.IRM, true
		}
		return false, false
	}
	switch code {
	case 1:
		return s.modes.DECCKM, true
	case 3:
		return s.modes.DECCOLM, true
	case 6:
		return s.modes.DECOM, true
	case 7:
		return s.modes.DECAWM, true
	case 8:
		return s.modes.DECARM, true
	case 25:
		return s.cursor.Visible, true
	case 5:
		return s.modes.DECSCNM, true
	case 12:
		return s.cursor.Blink, true
	case 1000:
		return s.modes.MouseTrackingMode == MouseTrackingButton, true
	case 1002:
		return s.modes.MouseTrackingMode == MouseTrackingMotion, true
	case 1003:
		return s.modes.MouseTrackingMode == MouseTrackingAny, true
	case 1005:
		return s.modes.MouseTrackingProtocol == MouseProtocolUTF8, true
	case 1006:
		return s.modes.MouseTrackingProtocol == MouseProtocolSGR, true
	case 1015:
		return s.modes.MouseTrackingProtocol == MouseProtocolURXVT, true
	case 1004:
		return s.modes.FocusTracking, true
	case 1049:
		return !s.isMain(), true
	case 2004:
		return s.modes.BracketedPaste, true
	case 2017:
		return s.modes.ExtendedKeyboard, true
	}
	return false, false
}
