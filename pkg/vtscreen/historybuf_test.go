package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineOf(ch rune, columns int) Line {
	l := NewLine(columns)
	l.Cells[0] = Cell{Codepoint: ch, Width: WidthNorm}
	return l
}

func TestHistoryBufRingEvictsOldest(t *testing.T) {
	h := NewHistoryBuf(3, 10)
	h.Add(lineOf('a', 10))
	h.Add(lineOf('b', 10))
	h.Add(lineOf('c', 10))
	h.Add(lineOf('d', 10))

	assert.Equal(t, 3, h.Count())
	assert.Equal(t, 'b', h.Line(0).Cells[0].Codepoint)
	assert.Equal(t, 'c', h.Line(1).Cells[0].Codepoint)
	assert.Equal(t, 'd', h.Line(2).Cells[0].Codepoint)
}

func TestHistoryBufRewrapPreservesCapacity(t *testing.T) {
	h := NewHistoryBuf(4, 4)
	l := NewLine(4)
	copy(l.Cells, []Cell{{Codepoint: 'a', Width: WidthNorm}, {Codepoint: 'b', Width: WidthNorm}, {Codepoint: 'c', Width: WidthNorm}, {Codepoint: 'd', Width: WidthNorm}})
	l.Continued = true
	h.Add(l)
	h.Add(lineOf('e', 4))

	nb := h.Rewrap(8)
	assert.Equal(t, 4, nb.Capacity())
	assert.Equal(t, 1, nb.Count())
	got := nb.Line(0)
	assert.Equal(t, []rune{'a', 'b', 'c', 'd', 'e'}, collectGlyphs(got, 5))
}
