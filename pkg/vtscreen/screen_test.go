package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, lines, columns, scrollback int) *Screen {
	t.Helper()
	s, err := NewScreen(lines, columns, scrollback, nil, nil)
	require.NoError(t, err)
	return s
}

func drawString(s *Screen, str string) {
	for _, r := range str {
		s.Draw(r)
	}
}

func rowText(s *Screen, y int) string {
	l, err := s.Line(y)
	if err != nil {
		return ""
	}
	out := make([]rune, 0, s.Columns())
	for _, c := range l.Cells {
		if c.Codepoint == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, c.Codepoint)
		}
	}
	return string(out)
}

func TestDrawWrapsAndMarksContinued(t *testing.T) {
	s := newTestScreen(t, 3, 4, 10)
	drawString(s, "abcde")

	l0, err := s.Line(0)
	require.NoError(t, err)
	assert.True(t, l0.Continued)
	assert.Equal(t, "abcd", rowText(s, 0))
	assert.Equal(t, "e", rowText(s, 1)[:1])
	assert.Equal(t, 1, s.Cursor().X)
	assert.Equal(t, 1, s.Cursor().Y)
}

func TestIndexScrollsIntoHistoryOnMain(t *testing.T) {
	s := newTestScreen(t, 3, 4, 10)
	s.CursorPosition(3, 1)
	before := s.HistoryCount()
	s.Index()
	assert.Equal(t, before+1, s.HistoryCount())
}

func TestAltScreenPreservesMainContent(t *testing.T) {
	s := newTestScreen(t, 3, 4, 10)
	drawString(s, "main")

	s.ToggleAltScreen()
	assert.False(t, s.IsMainBuffer())
	drawString(s, "alt!")
	assert.Equal(t, "alt!", rowText(s, 0))

	s.ToggleAltScreen()
	assert.True(t, s.IsMainBuffer())
	assert.Equal(t, "main", rowText(s, 0))
}

func TestDECOMAddressingIsMarginRelative(t *testing.T) {
	s := newTestScreen(t, 10, 10, 10)
	s.SetMargins(3, 7)
	s.SetMode(ModeDECOM)
	s.CursorPosition(1, 1)
	assert.Equal(t, 2, s.Cursor().Y) // margin top (1-based row 3) is index 2
}

func TestSGRTruecolor(t *testing.T) {
	s := newTestScreen(t, 3, 10, 10)
	s.SelectGraphicRendition([]int{38, 2, 10, 20, 30})
	r, g, b := s.Cursor().Fg.RGB()
	assert.Equal(t, uint8(10), r)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), b)
}

func TestSGRUndercurl(t *testing.T) {
	s := newTestScreen(t, 3, 10, 10)
	s.SelectGraphicRendition([]int{int(UndercurlCode)})
	assert.Equal(t, DecorationCurly, s.Cursor().Decoration)
}

func TestCursorSaveRestoreRoundTrip(t *testing.T) {
	s := newTestScreen(t, 5, 10, 10)
	s.CursorPosition(2, 3)
	s.SaveCursor()
	s.CursorPosition(5, 5)
	s.RestoreCursor()
	assert.Equal(t, 2, s.Cursor().X)
	assert.Equal(t, 1, s.Cursor().Y)
}

func TestResizeRoundTrip(t *testing.T) {
	s := newTestScreen(t, 5, 10, 10)
	drawString(s, "hello")
	require.NoError(t, s.Resize(8, 20))
	assert.Equal(t, 8, s.Lines())
	assert.Equal(t, 20, s.Columns())
	require.NoError(t, s.Resize(5, 10))
	assert.Equal(t, 5, s.Lines())
	assert.Equal(t, 10, s.Columns())
}

func TestResizeShrinkingLinesEvictsOldestIntoHistory(t *testing.T) {
	s := newTestScreen(t, 4, 4, 10)
	for i, ch := range []rune{'A', 'B', 'C', 'D'} {
		s.CursorPosition(i+1, 1)
		s.Draw(ch)
	}
	before := s.HistoryCount()

	require.NoError(t, s.Resize(2, 4))

	assert.Equal(t, before+2, s.HistoryCount())
	assert.Equal(t, 'A', s.history.Line(0).Cells[0].Codepoint)
	assert.Equal(t, 'B', s.history.Line(1).Cells[0].Codepoint)
	assert.Equal(t, "C   ", rowText(s, 0))
	assert.Equal(t, "D   ", rowText(s, 1))
	assert.Equal(t, 1, s.Cursor().Y)
}

func TestInsertDeleteCharactersIsIdentity(t *testing.T) {
	s := newTestScreen(t, 3, 10, 10)
	drawString(s, "abcdefghij")
	before := rowText(s, 0)

	s.CursorPosition(1, 3)
	s.InsertCharacters(2)
	s.CursorPosition(1, 3)
	s.DeleteCharacters(2)

	assert.Equal(t, before[:len(before)-2], rowText(s, 0)[:len(before)-2])
}

func TestEraseInDisplayWhole(t *testing.T) {
	s := newTestScreen(t, 3, 5, 10)
	drawString(s, "hi")
	s.EraseInDisplay(2, false)
	for y := 0; y < s.Lines(); y++ {
		assert.Equal(t, "     ", rowText(s, y))
	}
}

func TestAlignmentDisplayResetsMarginBottomToLines(t *testing.T) {
	s := newTestScreen(t, 4, 4, 10)
	s.SetMargins(2, 3)
	s.AlignmentDisplay()
	assert.Equal(t, 0, s.marginTop)
	assert.Equal(t, s.lines-1, s.marginBottom)
	assert.Equal(t, "EEEE", rowText(s, 0))
}

func TestSetModeDECTCEMTogglesCursorVisibility(t *testing.T) {
	s := newTestScreen(t, 3, 3, 10)
	assert.True(t, s.Cursor().Visible)
	s.ResetMode(ModeDECTCEM)
	assert.False(t, s.Cursor().Visible)
	s.SetMode(ModeDECTCEM)
	assert.True(t, s.Cursor().Visible)
}

type recordingCallbacks struct {
	NopCallbacks
	written [][]byte
}

func (r *recordingCallbacks) WriteToChild(data []byte) {
	r.written = append(r.written, append([]byte(nil), data...))
}

func TestReportDeviceStatusCursorPosition(t *testing.T) {
	cb := &recordingCallbacks{}
	s, err := NewScreen(5, 10, 10, cb, nil)
	require.NoError(t, err)
	s.CursorPosition(2, 3)
	s.ReportDeviceStatus(6, false)
	require.Len(t, cb.written, 1)
	assert.Equal(t, "\x1b[2;3R", string(cb.written[0]))
}

func TestReportDeviceStatusWrapsPastLastColumn(t *testing.T) {
	cb := &recordingCallbacks{}
	s, err := NewScreen(5, 10, 10, cb, nil)
	require.NoError(t, err)
	s.CursorPosition(2, 10)
	s.Draw('x') // fills the last column of row 2, leaving the cursor past it
	s.ReportDeviceStatus(6, false)
	require.Len(t, cb.written, 1)
	assert.Equal(t, "\x1b[3;1R", string(cb.written[0]))
}

func TestReportDeviceStatusWrapAtLastRowDecrementsColumn(t *testing.T) {
	cb := &recordingCallbacks{}
	s, err := NewScreen(5, 10, 10, cb, nil)
	require.NoError(t, err)
	s.CursorPosition(5, 10)
	s.Draw('x') // fills the last column of the last row, leaving the cursor past it
	s.ReportDeviceStatus(6, false)
	require.Len(t, cb.written, 1)
	assert.Equal(t, "\x1b[5;10R", string(cb.written[0]))
}

func TestReportDeviceStatusAppliesDECOMOffsetWithoutPrivateForm(t *testing.T) {
	cb := &recordingCallbacks{}
	s, err := NewScreen(10, 10, 10, cb, nil)
	require.NoError(t, err)
	s.SetMargins(3, 7)
	s.SetMode(ModeDECOM)
	s.CursorPosition(2, 2) // margin-relative row 2 -> absolute row 3
	s.ReportDeviceStatus(6, false)
	require.Len(t, cb.written, 1)
	assert.Equal(t, "\x1b[2;2R", string(cb.written[0]))
}

func TestSetModeDECCOLMSetsFlagWithoutResizing(t *testing.T) {
	s := newTestScreen(t, 5, 80, 10)
	s.SetMode(ModeDECCOLM)
	assert.True(t, s.Modes().DECCOLM)
	assert.Equal(t, 80, s.Columns())

	v, ok := s.queryMode(3, true)
	assert.True(t, ok)
	assert.True(t, v)

	s.ResetMode(ModeDECCOLM)
	assert.False(t, s.Modes().DECCOLM)
}

func TestBellFiresCallback(t *testing.T) {
	cb := &bellCallbacks{}
	s, err := NewScreen(3, 3, 10, cb, nil)
	require.NoError(t, err)
	s.Bell()
	assert.Equal(t, 1, cb.rung)
}

type bellCallbacks struct {
	NopCallbacks
	rung int
}

func (b *bellCallbacks) Bell() { b.rung++ }

func TestWriteBufReceivesReportOutput(t *testing.T) {
	s := newTestScreen(t, 5, 10, 10)
	s.ReportDeviceStatus(5, false)
	assert.Equal(t, []byte("\x1b[0n"), s.WriteBuf().Take())
}

func TestFeedAppendsToReadBuf(t *testing.T) {
	s := newTestScreen(t, 5, 10, 10)
	s.Feed([]byte("hello"))
	assert.Equal(t, []byte("hello"), s.ReadBuf().Take())
	assert.Equal(t, 0, s.ReadBuf().Len())
}
