package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillGlyph(lb *LineBuf, y int, ch rune) {
	l := lb.Line(y)
	l.Cells[0] = Cell{Codepoint: ch, Width: WidthNorm}
}

func glyphAt(lb *LineBuf, y int) rune {
	return lb.Line(y).Cells[0].Codepoint
}

func TestLineBufIndexRotatesAndEvictsTop(t *testing.T) {
	lb := NewLineBuf(4, 10)
	for i, ch := range []rune{'a', 'b', 'c', 'd'} {
		fillGlyph(lb, i, ch)
	}
	lb.Index(0, 3)
	assert.Equal(t, 'b', glyphAt(lb, 0))
	assert.Equal(t, 'c', glyphAt(lb, 1))
	assert.Equal(t, 'd', glyphAt(lb, 2))
	// row 3 now holds what was row 0's backing storage, uncleared by Index itself.
	assert.Equal(t, 'a', glyphAt(lb, 3))
}

func TestLineBufReverseIndexIsIndexInverse(t *testing.T) {
	lb := NewLineBuf(4, 10)
	for i, ch := range []rune{'a', 'b', 'c', 'd'} {
		fillGlyph(lb, i, ch)
	}
	lb.Index(0, 3)
	lb.ReverseIndex(0, 3)
	for i, want := range []rune{'a', 'b', 'c', 'd'} {
		assert.Equal(t, want, glyphAt(lb, i))
	}
}

func TestLineBufInsertLines(t *testing.T) {
	lb := NewLineBuf(5, 10)
	for i, ch := range []rune{'a', 'b', 'c', 'd', 'e'} {
		fillGlyph(lb, i, ch)
	}
	lb.InsertLines(2, 1, 4)
	assert.Equal(t, 'a', glyphAt(lb, 0))
	assert.Equal(t, rune(0), glyphAt(lb, 1)) // new blank
	assert.Equal(t, rune(0), glyphAt(lb, 2)) // new blank
	assert.Equal(t, 'b', glyphAt(lb, 3))
	assert.Equal(t, 'c', glyphAt(lb, 4))
}

func TestLineBufDeleteLines(t *testing.T) {
	lb := NewLineBuf(5, 10)
	for i, ch := range []rune{'a', 'b', 'c', 'd', 'e'} {
		fillGlyph(lb, i, ch)
	}
	lb.DeleteLines(2, 1, 4)
	assert.Equal(t, 'a', glyphAt(lb, 0))
	assert.Equal(t, 'd', glyphAt(lb, 1))
	assert.Equal(t, 'e', glyphAt(lb, 2))
	assert.Equal(t, rune(0), glyphAt(lb, 3))
	assert.Equal(t, rune(0), glyphAt(lb, 4))
}

func TestLineBufRewrapJoinsContinuedLines(t *testing.T) {
	lb := NewLineBuf(2, 4)
	l0 := lb.Line(0)
	copy(l0.Cells, []Cell{{Codepoint: 'a', Width: WidthNorm}, {Codepoint: 'b', Width: WidthNorm}, {Codepoint: 'c', Width: WidthNorm}, {Codepoint: 'd', Width: WidthNorm}})
	l0.Continued = true
	l1 := lb.Line(1)
	l1.Cells[0] = Cell{Codepoint: 'e', Width: WidthNorm}

	cursorY := 1
	nb := lb.Rewrap(2, 8, &cursorY, nil)
	line0 := nb.Line(0)
	assert.Equal(t, []rune{'a', 'b', 'c', 'd', 'e'}, collectGlyphs(line0, 5))
	assert.Equal(t, 0, cursorY)
}

func collectGlyphs(l *Line, n int) []rune {
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		out[i] = l.Cells[i].Codepoint
	}
	return out
}
