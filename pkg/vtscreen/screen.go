package vtscreen

import (
	"log"
	"math"
)

// DeviceAttribute version numbers reported by DA2 (report mode 0,
// start_modifier '>').
const (
	PrimaryVersion   = 1
	SecondaryVersion = 0
)

// Screen is the top-level aggregate tying together the main/alt
// LineBufs, the scrollback HistoryBuf, the Cursor, ModeSet, the two
// per-buffer SavepointStacks, and CharsetState. It exposes the full
// command surface described in spec.md §4.
type Screen struct {
	lines, columns int

	mainLineBuf *LineBuf
	altLineBuf  *LineBuf
	linebuf     *LineBuf
	history     *HistoryBuf

	mainTabstops []bool
	altTabstops  []bool
	tabstops     []bool

	cursor Cursor
	modes  ModeSet

	mainSavepoints SavepointStack
	altSavepoints  SavepointStack

	charset CharsetState

	marginTop, marginBottom int

	isDirty       bool
	cursorChanged bool

	historyLineAddedCount int

	callbacks Callbacks
	logger    *log.Logger

	readBuf  *ByteQueue
	writeBuf *ByteQueue
}

// NewScreen constructs a Screen with the given visible size and
// scrollback capacity. callbacks and logger may be nil; NopCallbacks
// and log.Default() are substituted respectively.
func NewScreen(lines, columns, scrollback int, callbacks Callbacks, logger *log.Logger) (*Screen, error) {
	if lines < 1 {
		lines = 1
	}
	if columns < 1 {
		columns = 1
	}
	if err := checkAllocSize("NewScreen", lines, columns); err != nil {
		return nil, err
	}
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}
	if logger == nil {
		logger = log.Default()
	}
	if scrollback < lines {
		scrollback = lines
	}

	s := &Screen{
		lines:   lines,
		columns: columns,

		mainLineBuf: NewLineBuf(lines, columns),
		altLineBuf:  NewLineBuf(lines, columns),
		history:     NewHistoryBuf(scrollback, columns),

		cursor:  NewCursor(),
		modes:   DefaultModes(),
		charset: NewCharsetState(),

		marginBottom: lines - 1,

		isDirty:       true,
		cursorChanged: true,

		callbacks: callbacks,
		logger:    logger,

		readBuf:  &ByteQueue{},
		writeBuf: &ByteQueue{},
	}
	s.linebuf = s.mainLineBuf
	s.mainTabstops = newTabstops(columns)
	s.altTabstops = newTabstops(columns)
	s.tabstops = s.mainTabstops
	s.mainSavepoints.onOverflow = s.savepointOverflow
	s.altSavepoints.onOverflow = s.savepointOverflow
	return s, nil
}

func checkAllocSize(op string, lines, columns int) error {
	if lines <= 0 || columns <= 0 {
		return &AllocationFailure{Op: op}
	}
	if float64(lines)*float64(columns) > math.MaxInt32 {
		return &AllocationFailure{Op: op}
	}
	return nil
}

func newTabstops(columns int) []bool {
	t := make([]bool, columns)
	for i := range t {
		t[i] = (i+1)%8 == 0
	}
	return t
}

func (s *Screen) savepointOverflow() {
	s.logger.Printf("vtscreen: savepoint stack overflow, dropping oldest entry")
}

func (s *Screen) isMain() bool { return s.linebuf == s.mainLineBuf }

// Lines / Columns report the current visible size.
func (s *Screen) Lines() int   { return s.lines }
func (s *Screen) Columns() int { return s.columns }

// Cursor returns a copy of the current cursor state.
func (s *Screen) Cursor() Cursor { return s.cursor }

// Modes returns a copy of the current mode set.
func (s *Screen) Modes() ModeSet { return s.modes }

// HistoryLineAddedCount returns the count accumulated since the last
// ResetDirty call.
func (s *Screen) HistoryLineAddedCount() int { return s.historyLineAddedCount }

// IsDirty / CursorChanged report the monotonic dirty flags.
func (s *Screen) IsDirty() bool       { return s.isDirty }
func (s *Screen) CursorChanged() bool { return s.cursorChanged }

// ResetDirty clears is_dirty, cursor_changed, and
// history_line_added_count, per spec §5.
func (s *Screen) ResetDirty() {
	s.isDirty = false
	s.cursorChanged = false
	s.historyLineAddedCount = 0
}

// Line returns the visible row y of the active buffer. BoundsViolation
// is returned for y outside [0, Lines()).
func (s *Screen) Line(y int) (*Line, error) {
	if y < 0 || y >= s.lines {
		return nil, &BoundsViolation{Op: "Line", Index: y, Size: s.lines}
	}
	return s.linebuf.Line(y), nil
}

// HistoryLine returns scrollback line i (0 = oldest). BoundsViolation
// is returned for i outside [0, History count).
func (s *Screen) HistoryLine(i int) (*Line, error) {
	if i < 0 || i >= s.history.Count() {
		return nil, &BoundsViolation{Op: "HistoryLine", Index: i, Size: s.history.Count()}
	}
	return s.history.Line(i), nil
}

// HistoryCount reports how many scrollback lines are currently stored.
func (s *Screen) HistoryCount() int { return s.history.Count() }

// IsMainBuffer reports whether the main (not alternate) screen is active.
func (s *Screen) IsMainBuffer() bool { return s.isMain() }

// --- Lifecycle --------------------------------------------------------

// Reset returns the screen to defaults while preserving capacity and
// callback sink (screen_reset in screen.c).
func (s *Screen) Reset() {
	if !s.isMain() {
		s.toggleAltScreen()
	}
	s.linebuf.ClearAll()
	s.modes = DefaultModes()
	s.charset.Reset()
	s.marginTop = 0
	s.marginBottom = s.lines - 1
	s.mainTabstops = newTabstops(s.columns)
	s.altTabstops = newTabstops(s.columns)
	s.tabstops = s.mainTabstops
	s.cursor.Reset()
	s.cursorChanged = true
	s.isDirty = true
	s.CursorPosition(1, 1)
}

// Resize rewraps both LineBufs and the history to the new size,
// clamps the cursor, and reinitializes tabstops. When shrinking width
// on the active main buffer, if the cursor's row was continued or now
// overflows, an Index is performed so the client doesn't overprint.
func (s *Screen) Resize(newLines, newColumns int) error {
	if newLines < 1 {
		newLines = 1
	}
	if newColumns < 1 {
		newColumns = 1
	}
	if err := checkAllocSize("Resize", newLines, newColumns); err != nil {
		return err
	}

	isMain := s.isMain()
	isXShrink := newColumns < s.columns
	cursorX := s.cursor.X

	indexAfterResize := false
	if isMain && isXShrink {
		l := s.mainLineBuf.Line(s.cursor.Y)
		if l.Continued || l.Length() > newColumns {
			indexAfterResize = true
		}
	}

	newHistory := s.history.Rewrap(newColumns)

	mainCursorY := s.cursor.Y
	newMain := s.mainLineBuf.Rewrap(newLines, newColumns, &mainCursorY, newHistory)

	if isMain {
		cy := mainCursorY
		if cy >= newLines {
			cy = newLines - 1
		}
		s.cursor.Y = maxInt(0, cy)
	}

	altCursorY := -1
	newAlt := s.altLineBuf.Rewrap(newLines, newColumns, &altCursorY, nil)
	if !isMain {
		cy := altCursorY
		if cy >= newLines {
			cy = newLines - 1
		}
		s.cursor.Y = maxInt(0, cy)
	}

	s.mainLineBuf = newMain
	s.altLineBuf = newAlt
	s.history = newHistory
	if isMain {
		s.linebuf = s.mainLineBuf
	} else {
		s.linebuf = s.altLineBuf
	}

	if isXShrink && cursorX >= newColumns {
		s.cursor.X = newColumns - 1
	}

	s.lines = newLines
	s.columns = newColumns
	s.marginTop = 0
	s.marginBottom = s.lines - 1

	s.mainTabstops = newTabstops(s.columns)
	s.altTabstops = newTabstops(s.columns)
	if isMain {
		s.tabstops = s.mainTabstops
	} else {
		s.tabstops = s.altTabstops
	}

	s.cursorChanged = true
	s.isDirty = true
	if indexAfterResize {
		s.Index()
	}
	return nil
}

// SetScrollbackSize reallocates the HistoryBuf to hold n lines
// (screen_change_scrollback_size). Existing lines are copied over
// unchanged, keeping the newest n when the new capacity is smaller.
func (s *Screen) SetScrollbackSize(n int) error {
	if n < s.lines {
		n = s.lines
	}
	if n == s.history.Capacity() {
		return nil
	}
	if err := checkAllocSize("SetScrollbackSize", n, s.columns); err != nil {
		return err
	}
	nb := NewHistoryBuf(n, s.columns)
	old := s.history.Lines()
	start := 0
	if len(old) > n {
		start = len(old) - n
	}
	for _, l := range old[start:] {
		nb.Add(l)
	}
	s.history = nb
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
