package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeWcwidthBasic(t *testing.T) {
	assert.Equal(t, 1, safeWcwidth('a'))
	assert.Equal(t, 2, safeWcwidth('界')) // CJK wide glyph
}

func TestIsIgnoredChar(t *testing.T) {
	assert.True(t, isIgnoredChar(0xFEFF))
	assert.True(t, isIgnoredChar(0x07))
	assert.False(t, isIgnoredChar('a'))
}

func TestIsCombiningChar(t *testing.T) {
	assert.True(t, isCombiningChar(0x0301)) // combining acute accent
	assert.False(t, isCombiningChar('a'))
}
