package vtscreen

// Sub-codes used by the SGR extended-color syntax (38/48/58 ...).
const (
	sgrExtended256 = 5
	sgrExtendedRGB = 2
)

// UndercurlCode is the normalized top-level SGR code this package
// expects the parser collaborator to emit for a curly underline
// (conventionally signalled on the wire as the colon sub-parameter
// form "4:3"; splitting colon sub-params is the parser's job, out of
// scope here, so by the time Screen sees it it arrives as this single
// code).
const UndercurlCode = 1000003

// Decoration-color codes (set/reset underline color), matching the
// de facto terminal convention (58 set, 59 reset) kitty's
// DECORATION_FG_CODE/+1 pair implements.
const (
	DecorationFgCode      = 58
	DecorationFgResetCode = DecorationFgCode + 1
)

// SelectGraphicRendition consumes SGR params left to right, updating
// the cursor's rendition. An empty params slice behaves as [0].
func (s *Screen) SelectGraphicRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	i := 0
	for i < len(params) {
		attr := params[i]
		i++
		switch {
		case attr == 0:
			s.cursor.ResetDisplayAttrs()
		case attr == 1:
			s.cursor.Bold = true
		case attr == 3:
			s.cursor.Italic = true
		case attr == 4:
			s.cursor.Decoration = DecorationStraight
		case attr == UndercurlCode:
			s.cursor.Decoration = DecorationCurly
		case attr == 21 || attr == 22:
			s.cursor.Bold = false
		case attr == 23:
			s.cursor.Italic = false
		case attr == 24:
			s.cursor.Decoration = DecorationNone
		case attr == 7:
			s.cursor.Reverse = true
		case attr == 27:
			s.cursor.Reverse = false
		case attr == 9:
			s.cursor.Strike = true
		case attr == 29:
			s.cursor.Strike = false
		case attr >= 30 && attr <= 37:
			s.cursor.Fg = PaletteColor(uint8(attr - 30))
		case attr == 38:
			i = consumeExtendedColor(params, i, &s.cursor.Fg)
		case attr == 39:
			s.cursor.Fg = DefaultColor
		case attr >= 40 && attr <= 47:
			s.cursor.Bg = PaletteColor(uint8(attr - 40))
		case attr == 48:
			i = consumeExtendedColor(params, i, &s.cursor.Bg)
		case attr == 49:
			s.cursor.Bg = DefaultColor
		case attr >= 90 && attr <= 97:
			s.cursor.Fg = PaletteColor(uint8(attr - 90 + 8))
		case attr >= 100 && attr <= 107:
			s.cursor.Bg = PaletteColor(uint8(attr - 100 + 8))
		case attr == DecorationFgCode:
			i = consumeExtendedColor(params, i, &s.cursor.DecorationFg)
		case attr == DecorationFgResetCode:
			s.cursor.DecorationFg = DefaultColor
		default:
			// unknown codes are ignored, per spec §4.6
		}
	}
}

// consumeExtendedColor parses the 38/48/58 sub-param forms (5;idx or
// 2;r;g;b) starting at params[i], writes the result into dst, and
// returns the new cursor index.
func consumeExtendedColor(params []int, i int, dst *Color) int {
	if i >= len(params) {
		return i
	}
	kind := params[i]
	i++
	switch kind {
	case sgrExtended256:
		if i < len(params) {
			*dst = PaletteColor(uint8(params[i] & 0xFF))
			i++
		}
	case sgrExtendedRGB:
		if i+2 < len(params) {
			r := uint8(params[i] & 0xFF)
			g := uint8(params[i+1] & 0xFF)
			b := uint8(params[i+2] & 0xFF)
			*dst = TruecolorColor(r, g, b)
			i += 3
		}
	}
	return i
}
