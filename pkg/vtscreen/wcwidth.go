package vtscreen

import (
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// safeWcwidth clamps the display width of a codepoint to [0,2],
// mirroring kitty's safe_wcwidth: negative widths become 1 and widths
// above 2 become 2.
func safeWcwidth(ch rune) int {
	w := runewidth.RuneWidth(ch)
	if w < 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// isIgnoredChar reports whether a codepoint reaching draw() should be
// silently dropped: the non-printable C0/C1 controls the parser
// collaborator does not already intercept, and the BOM.
func isIgnoredChar(ch rune) bool {
	switch {
	case ch == 0xFEFF: // BOM
		return true
	case ch < 0x20: // C0 controls
		return true
	case ch >= 0x7F && ch <= 0x9F: // DEL + C1 controls
		return true
	}
	return false
}

// isCombiningChar reports whether ch attaches to the preceding cell
// rather than occupying one of its own. uniseg's grapheme-cluster
// boundary classification is used instead of a hand-rolled Unicode
// range table: a codepoint that uniseg would never start a new
// cluster with (when following any base rune) is treated as
// combining, which covers combining marks, variation selectors, and
// zero-width joiners alike.
func isCombiningChar(ch rune) bool {
	if ch == 0x200D { // ZERO WIDTH JOINER: always attaches
		return true
	}
	if unicode.Is(unicode.Mn, ch) || unicode.Is(unicode.Me, ch) || unicode.Is(unicode.Mc, ch) {
		return true
	}
	return graphemeJoins('a', ch)
}

// graphemeJoins reports whether appending next to a cluster already
// containing base would still form a single grapheme cluster.
func graphemeJoins(base, next rune) bool {
	s := string(base) + string(next)
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return first == s
}
