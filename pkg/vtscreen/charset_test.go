package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharsetSavepointCopyIsIndependent(t *testing.T) {
	cs := NewCharsetState()
	cs.Designate(1, CharsetDECSpecialGraphics)
	cs.Change(1)

	snapshot := cs // value copy, as Screen.SaveCursor does

	// Mutating the live state afterward must not perturb the snapshot.
	cs.Designate(0, CharsetDECSpecialGraphics)
	cs.Change(0)

	assert.Equal(t, 1, snapshot.Active)
	assert.Equal(t, CharsetDECSpecialGraphics, snapshot.activeCharset())
	assert.Equal(t, 0, cs.Active)
	assert.Equal(t, CharsetDECSpecialGraphics, cs.activeCharset())
}

func TestCharsetTranslateASCIIIsIdentity(t *testing.T) {
	cs := NewCharsetState()
	assert.Equal(t, 'a', cs.translate('a'))
}

func TestCharsetTranslateDECSpecialGraphicsRemapsLowerRange(t *testing.T) {
	cs := NewCharsetState()
	cs.Designate(0, CharsetDECSpecialGraphics)
	assert.Equal(t, '─', cs.translate('q'))
	// codepoints outside the remapped 0x60-0x7e glyph range pass through.
	assert.Equal(t, rune('A'), cs.translate('A'))
}

func TestDecodeLatin1(t *testing.T) {
	s, err := DecodeLatin1([]byte{0xE9}) // é in latin-1
	assert.NoError(t, err)
	assert.Equal(t, "é", s)
}
