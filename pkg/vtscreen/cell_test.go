package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorKinds(t *testing.T) {
	assert.True(t, DefaultColor.IsDefault())

	p := PaletteColor(42)
	assert.False(t, p.IsDefault())
	assert.Equal(t, uint8(42), p.Palette())

	rgb := TruecolorColor(10, 20, 30)
	r, g, b := rgb.RGB()
	assert.Equal(t, uint8(10), r)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), b)
}

func TestCellAddCombiningCapsAtMax(t *testing.T) {
	c := Cell{Codepoint: 'a', Width: WidthNorm}
	c.addCombining(0x0301)
	c.addCombining(0x0302)
	c.addCombining(0x0303) // dropped, already at MaxCombining
	assert.Equal(t, MaxCombining, c.NCombining)
}

func TestBlankIsEmpty(t *testing.T) {
	assert.True(t, Blank().IsEmpty())
	assert.False(t, Cell{Codepoint: 'x', Width: WidthNorm}.IsEmpty())
}
