package vtscreen

// HistoryBuf is a fixed-capacity ring of Lines evicted off the top of
// the main LineBuf. Associated only with the main screen (spec §9):
// nothing about the alt buffer ever touches it.
type HistoryBuf struct {
	lines    []Line
	capacity int
	start    int // index of the oldest line
	count    int
	columns  int
}

// NewHistoryBuf allocates a history ring holding at most capacity
// lines of the given width.
func NewHistoryBuf(capacity, columns int) *HistoryBuf {
	if capacity < 1 {
		capacity = 1
	}
	return &HistoryBuf{
		lines:    make([]Line, capacity),
		capacity: capacity,
		columns:  columns,
	}
}

// Count reports how many lines are currently stored.
func (h *HistoryBuf) Count() int { return h.count }

// Capacity reports the ring's maximum size.
func (h *HistoryBuf) Capacity() int { return h.capacity }

// Add pushes a new line onto the ring as the newest entry, discarding
// the oldest line if the ring is already full.
func (h *HistoryBuf) Add(l Line) {
	idx := (h.start + h.count) % h.capacity
	if h.count == h.capacity {
		h.start = (h.start + 1) % h.capacity
	} else {
		h.count++
	}
	h.lines[idx] = l
}

// Line returns history line i, 0 = oldest, Count()-1 = newest.
func (h *HistoryBuf) Line(i int) *Line {
	idx := (h.start + i) % h.capacity
	return &h.lines[idx]
}

// Lines returns all stored lines, oldest first.
func (h *HistoryBuf) Lines() []Line {
	out := make([]Line, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = *h.Line(i)
	}
	return out
}

// Rewrap reflows the history's content into a freshly allocated
// HistoryBuf of newColumns width and the same capacity, applying the
// same soft-wrap join/rebreak rule as LineBuf.Rewrap. Lines that no
// longer fit (capacity is unchanged, but rebreaking at a narrower
// width can produce more rows) are dropped oldest-first.
func (h *HistoryBuf) Rewrap(newColumns int) *HistoryBuf {
	old := h.Lines()
	var logical [][]Cell
	var continuedTail bool
	for _, l := range old {
		if len(logical) > 0 && continuedTail {
			logical[len(logical)-1] = append(logical[len(logical)-1], l.Cells...)
		} else {
			row := make([]Cell, len(l.Cells))
			copy(row, l.Cells)
			logical = append(logical, row)
		}
		continuedTail = l.Continued
	}

	nb := NewHistoryBuf(h.capacity, newColumns)
	for _, flat := range logical {
		trimmed := trimTrailingBlanks(flat)
		if len(trimmed) == 0 {
			nb.Add(NewLine(newColumns))
			continue
		}
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
			nb.Add(Line{Cells: row, Continued: j < len(trimmed)})
		}
	}
	return nb
}
