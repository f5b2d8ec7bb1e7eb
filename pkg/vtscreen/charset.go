package vtscreen

import (
	"golang.org/x/text/encoding/charmap"
)

// Charset identifies a G0/G1 designation (spec §4.10). Only the
// identity table and the DEC special graphics ("line drawing") table
// are modeled; any other designation falls back to identity, matching
// kitty's translation_table() behavior for charsets it does not special-case.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetDECSpecialGraphics
)

// translationTable maps a Charset to its 256-entry substitution table,
// used by Screen.draw to remap codepoints below 256.
func translationTable(cs Charset) *[256]rune {
	switch cs {
	case CharsetDECSpecialGraphics:
		return &decSpecialGraphicsTable
	default:
		return &identityTable
	}
}

var identityTable = func() (t [256]rune) {
	for i := range t {
		t[i] = rune(i)
	}
	return t
}()

// decSpecialGraphicsTable remaps the 0x60-0x7e range to the VT100
// line-drawing glyph set; everything else is identity.
var decSpecialGraphicsTable = func() [256]rune {
	t := identityTable
	glyphs := map[byte]rune{
		'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌',
		'd': '␍', 'e': '␊', 'f': '°', 'g': '±',
		'h': '␤', 'i': '␋', 'j': '┘', 'k': '┐',
		'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺',
		'p': '⎻', 'q': '─', 'r': '⎼', 's': '⎽',
		't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
		'x': '│', 'y': '≤', 'z': '≥', '{': 'π',
		'|': '≠', '}': '£', '~': '·',
	}
	for b, r := range glyphs {
		t[b] = r
	}
	return t
}()

// CharsetState tracks the g0/g1 designations, which of them is
// active, UTF-8 decoder bookkeeping, and the latin-1 override flag.
//
// Active is an index (0 or 1) rather than a pointer into G0/G1: this
// type is copied by value into Savepoint at SAVE_CURSOR time, and a
// pointer aliasing a field of the pre-copy struct would keep tracking
// the original instead of the snapshot.
type CharsetState struct {
	G0, G1 Charset
	Active int

	UTF8State     int
	UTF8Codepoint rune
	UseLatin1     bool
}

// NewCharsetState returns charset state reset to defaults: both G0
// and G1 are ASCII, and G0 is active.
func NewCharsetState() CharsetState {
	cs := CharsetState{}
	cs.Reset()
	return cs
}

// Reset restores defaults (RESET_CHARSETS in screen.c).
func (c *CharsetState) Reset() {
	c.G0 = CharsetASCII
	c.G1 = CharsetASCII
	c.Active = 0
	c.UTF8State = 0
	c.UTF8Codepoint = 0
	c.UseLatin1 = false
}

// activeCharset returns the currently selected G charset.
func (c *CharsetState) activeCharset() Charset {
	if c.Active == 1 {
		return c.G1
	}
	return c.G0
}

// Designate rebinds g0 or g1 (which ∈ {0,1}) to as. The active
// pointer naturally tracks the rebound slot since Active is an index,
// not an alias, matching screen_designate_charset's "move g_charset
// along if it pointed at the slot being rebound" behavior.
func (c *CharsetState) Designate(which int, as Charset) {
	switch which {
	case 0:
		c.G0 = as
	case 1:
		c.G1 = as
	}
}

// Change selects the active G set between g0/g1.
func (c *CharsetState) Change(which int) {
	if which == 0 || which == 1 {
		c.Active = which
	}
}

// translate maps a codepoint below 256 through the active charset's
// translation table; codepoints ≥256 pass through unchanged.
func (c *CharsetState) translate(ch rune) rune {
	if ch >= 256 {
		return ch
	}
	return translationTable(c.activeCharset())[ch]
}

// latin1Decoder is the shared ISO-8859-1 codec used by DecodeLatin1.
var latin1Decoder = charmap.ISO8859_1.NewDecoder()

// DecodeLatin1 decodes raw bytes as ISO-8859-1, for hosts that call
// Screen.UseLatin1(true) and hand the core pre-split latin-1 bytes
// instead of UTF-8. This is a convenience codec only: actual byte
// decoding is the parser collaborator's job (out of scope here).
func DecodeLatin1(b []byte) (string, error) {
	return latin1Decoder.String(string(b))
}
