package vtscreen

// LineBuf is a `lines × columns` grid, indexed so logical row 0 is the
// top of the screen. Rotation (index/reverse_index) is done by
// shifting an index map rather than copying Line contents, the same
// O(1)-rotation technique used by kitty's LineBuf (see
// other_examples/kovidgoyal-kitty__linebuf.go's line_map).
type LineBuf struct {
	storage []Line
	lineMap []int // lineMap[logicalRow] = index into storage
	columns int
}

// NewLineBuf allocates a blank LineBuf of lines×columns.
func NewLineBuf(lines, columns int) *LineBuf {
	lb := &LineBuf{
		storage: make([]Line, lines),
		lineMap: make([]int, lines),
		columns: columns,
	}
	for i := range lb.storage {
		lb.storage[i] = NewLine(columns)
		lb.lineMap[i] = i
	}
	return lb
}

// Lines reports the number of rows.
func (lb *LineBuf) Lines() int { return len(lb.lineMap) }

// Columns reports the row width.
func (lb *LineBuf) Columns() int { return lb.columns }

// Line returns a pointer to the Line backing logical row y.
func (lb *LineBuf) Line(y int) *Line {
	return &lb.storage[lb.lineMap[y]]
}

// ClearAll blanks every row.
func (lb *LineBuf) ClearAll() {
	for i := range lb.storage {
		lb.storage[i].Clear()
	}
}

// ClearAllWithGlyph fills every cell of every row with ch (used by
// DECALN's alignment-display fill).
func (lb *LineBuf) ClearAllWithGlyph(ch rune) {
	for i := range lb.storage {
		l := &lb.storage[i]
		l.Continued = false
		for j := range l.Cells {
			l.Cells[j] = Cell{Codepoint: ch, Width: WidthNorm}
		}
	}
}

// ClearLine blanks logical row y and clears its continuation flag.
func (lb *LineBuf) ClearLine(y int) {
	lb.Line(y).Clear()
}

// Index rotates rows [top,bottom] so logical row top+1 becomes top;
// the line previously at top leaves the visible region (becoming the
// new bottom's backing storage, left for the caller to clear/harvest
// via ClearLine or history eviction).
func (lb *LineBuf) Index(top, bottom int) {
	if top >= bottom {
		return
	}
	evicted := lb.lineMap[top]
	copy(lb.lineMap[top:bottom], lb.lineMap[top+1:bottom+1])
	lb.lineMap[bottom] = evicted
}

// ReverseIndex is the inverse rotation: row bottom-1 becomes bottom,
// the previous bottom leaves the region and becomes the new top's
// backing storage.
func (lb *LineBuf) ReverseIndex(top, bottom int) {
	if top >= bottom {
		return
	}
	evicted := lb.lineMap[bottom]
	copy(lb.lineMap[top+1:bottom+1], lb.lineMap[top:bottom])
	lb.lineMap[top] = evicted
}

// InsertLines shifts rows [y, bottom-n] down by n within [y,bottom]
// and blanks rows [y, y+n-1]; n is clamped to bottom-y+1.
func (lb *LineBuf) InsertLines(n, y, bottom int) {
	maxN := bottom - y + 1
	if n > maxN {
		n = maxN
	}
	if n <= 0 {
		return
	}
	// Rotate the region's index map so the last n rows' storage moves
	// to the top and gets cleared; equivalent to n successive
	// ReverseIndex(y, bottom) calls but done in one pass.
	tmp := make([]int, bottom-y+1)
	copy(tmp, lb.lineMap[y:bottom+1])
	copy(lb.lineMap[y+n:bottom+1], tmp[:len(tmp)-n])
	copy(lb.lineMap[y:y+n], tmp[len(tmp)-n:])
	for i := y; i < y+n; i++ {
		lb.ClearLine(i)
	}
}

// DeleteLines shifts rows [y+n, bottom] up within [y,bottom] and
// blanks the last n rows; n is clamped to bottom-y+1.
func (lb *LineBuf) DeleteLines(n, y, bottom int) {
	maxN := bottom - y + 1
	if n > maxN {
		n = maxN
	}
	if n <= 0 {
		return
	}
	tmp := make([]int, bottom-y+1)
	copy(tmp, lb.lineMap[y:bottom+1])
	copy(lb.lineMap[y:bottom+1-n], tmp[n:])
	copy(lb.lineMap[bottom+1-n:bottom+1], tmp[:n])
	for i := bottom + 1 - n; i <= bottom; i++ {
		lb.ClearLine(i)
	}
}

// Rewrap reflows this LineBuf's content into a freshly allocated
// LineBuf of newLines×newColumns, joining soft-wrapped runs via the
// Continued flag and rebreaking at the new width. Rows that don't fit
// within newLines — whether from narrowing the width or from
// shrinking the row count outright — fall off the top and go into
// history (if non-nil), oldest first, the same eviction order
// indexUp uses. cursorY is updated in place to track the row the
// cursor's content ended up on.
func (lb *LineBuf) Rewrap(newLines, newColumns int, cursorY *int, history *HistoryBuf) *LineBuf {
	logicalLines := lb.collectLogicalLines()
	cursorAbs := -1
	if cursorY != nil {
		cursorAbs = *cursorY
	}

	type rewrapped struct {
		cells     []Cell
		continued bool
	}
	var out []rewrapped
	newCursorLineIdx := -1
	absRow := 0
	for _, ll := range logicalLines {
		start := absRow
		end := absRow + len(ll.rows)
		cursorInThisLogical := cursorAbs >= start && cursorAbs < end

		flat := make([]Cell, 0, len(ll.rows)*lb.columns)
		for _, r := range ll.rows {
			flat = append(flat, r.Cells...)
		}
		trimmed := trimTrailingBlanks(flat)

		if len(trimmed) == 0 {
			out = append(out, rewrapped{cells: NewLine(newColumns).Cells, continued: false})
			if cursorInThisLogical {
				newCursorLineIdx = len(out) - 1
			}
			absRow = end
			continue
		}

		firstNewRow := len(out)
		for i := 0; i < len(trimmed); i += newColumns {
			j := i + newColumns
			if j > len(trimmed) {
				j = len(trimmed)
			}
			row := make([]Cell, newColumns)
			for k := range row {
				row[k] = Blank()
			}
			copy(row, trimmed[i:j])
			out = append(out, rewrapped{cells: row, continued: j < len(trimmed)})
		}
		if cursorInThisLogical {
			newCursorLineIdx = firstNewRow + (len(trimmed)-1)/newColumns
		}
		absRow = end
	}

	nb := NewLineBuf(newLines, newColumns)

	// Lines beyond capacity fall off the top into history, oldest first.
	overflow := len(out) - newLines
	if overflow > 0 {
		if history != nil {
			for i := 0; i < overflow; i++ {
				history.Add(Line{Cells: out[i].cells, Continued: out[i].continued})
			}
		}
		out = out[overflow:]
		if newCursorLineIdx >= 0 {
			newCursorLineIdx -= overflow
			if newCursorLineIdx < 0 {
				newCursorLineIdx = 0
			}
		}
	}

	for i, rw := range out {
		if i >= newLines {
			break
		}
		l := nb.Line(i)
		copy(l.Cells, rw.cells)
		l.Continued = rw.continued
	}

	if cursorY != nil {
		if newCursorLineIdx >= 0 {
			*cursorY = newCursorLineIdx
		} else {
			*cursorY = 0
		}
	}
	return nb
}

type logicalLine struct {
	rows []Line
}

// collectLogicalLines groups consecutive rows joined by Continued
// flags into logical (pre-wrap) lines, in top-to-bottom order.
func (lb *LineBuf) collectLogicalLines() []logicalLine {
	var out []logicalLine
	var cur *logicalLine
	for y := 0; y < lb.Lines(); y++ {
		l := *lb.Line(y)
		prevContinues := cur != nil && cur.rows[len(cur.rows)-1].Continued
		if cur == nil || !prevContinues {
			out = append(out, logicalLine{})
			cur = &out[len(out)-1]
		}
		cur.rows = append(cur.rows, l)
	}
	return out
}

// trimTrailingBlanks drops trailing empty cells from a flattened
// logical line so rewrap doesn't manufacture extra blank rows.
func trimTrailingBlanks(cells []Cell) []Cell {
	end := len(cells)
	for end > 0 && cells[end-1].IsEmpty() {
		end--
	}
	return cells[:end]
}
