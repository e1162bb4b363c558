package prompter

// minItemsForMulticolumn is the item-count threshold below which a grid
// always lays out as a single column (§4.4).
const minItemsForMulticolumn = 6

// gridMargin is the number of blank columns separating adjacent item
// columns in multi-column layout.
const gridMargin = 2

// gridNav holds the layout and navigation state shared by the List and
// Checkbox executors (§4.9): row/column layout over a flat item slice, a
// pagination window for single-column mode, and a cursor that always rests
// on a selectable item.
type gridNav struct {
	items   []PromptItem
	cursor  int // index into items; -1 if no item is selectable
	columns int

	scrollOffset int // first visible item index (single-column mode only)
	viewportRows int
}

// newGridNav starts the cursor on the first selectable item, or -1 for the
// "zero selectable items" edge case (§3 invariants), in which case the
// caller commits immediately with a sentinel result.
func newGridNav(items []PromptItem) *gridNav {
	return &gridNav{items: items, cursor: firstSelectable(items), columns: 1}
}

func (g *gridNav) empty() bool { return g.cursor < 0 }

// layout recomputes columns/lines for the current terminal width.
// itemWidth returns the rendered cell width of item i (indicator + optional
// key-prefix + text); availableRows bounds how many body rows can be used.
func (g *gridNav) layout(itemWidth func(i int) int, termCols, availableRows int) (columns, lines int) {
	n := len(g.items)
	if n < minItemsForMulticolumn {
		g.columns = 1
		return 1, n
	}

	maxWidth := 0
	for i := range g.items {
		if w := itemWidth(i); w > maxWidth {
			maxWidth = w
		}
	}

	columns = termCols / (maxWidth + gridMargin)
	if columns < 1 {
		columns = 1
	}
	if columns > n {
		columns = n
	}
	lines = ceilDiv(n, columns)
	for lines > availableRows && columns < n {
		columns++
		lines = ceilDiv(n, columns)
	}
	g.columns = columns
	return columns, lines
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// rowCol maps a linear item index to its (row, col) under row-first order.
func (g *gridNav) rowCol(index int) (row, col int) {
	return index / g.columns, index % g.columns
}

// indexAt maps (row, col) back to a linear item index, or -1 out of range.
func (g *gridNav) indexAt(row, col int) int {
	idx := row*g.columns + col
	if idx < 0 || idx >= len(g.items) {
		return -1
	}
	return idx
}

// forwardLine/backwardLine walk linearly by item index, skipping
// non-selectable entries, wrapping at the ends (§4.4).
func (g *gridNav) forwardLine()  { g.cursor = g.stepLinear(1) }
func (g *gridNav) backwardLine() { g.cursor = g.stepLinear(-1) }

func (g *gridNav) stepLinear(dir int) int {
	n := len(g.items)
	if n == 0 {
		return g.cursor
	}
	i := g.cursor
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if g.items[i].Selectable {
			return i
		}
	}
	return g.cursor
}

// forwardColumn/backwardColumn change column within the current row;
// landing on a non-selectable or out-of-range cell falls back to the
// linear next/prev selectable item (§4.4). No-ops when columns == 1.
func (g *gridNav) forwardColumn()  { g.stepColumn(1) }
func (g *gridNav) backwardColumn() { g.stepColumn(-1) }

func (g *gridNav) stepColumn(dir int) {
	if g.columns <= 1 {
		return
	}
	row, col := g.rowCol(g.cursor)
	nextCol := (col + dir + g.columns) % g.columns
	idx := g.indexAt(row, nextCol)
	if idx < 0 || !g.items[idx].Selectable {
		if dir > 0 {
			g.forwardLine()
		} else {
			g.backwardLine()
		}
		return
	}
	g.cursor = idx
}

// jumpToShortcut moves the cursor to the first selectable item whose
// Shortcut matches r, reporting whether one was found.
func (g *gridNav) jumpToShortcut(r rune) bool {
	for i, it := range g.items {
		if it.Selectable && it.Shortcut == r {
			g.cursor = i
			return true
		}
	}
	return false
}

// ensureVisible recomputes the visible [scrollOffset, scrollOffset+rows)
// window for single-column mode so the cursor always stays on screen: if
// it already sits within the window it is left alone, otherwise the window
// recentres with the cursor near the bottom and a single-row lookahead.
func (g *gridNav) ensureVisible(availableRows int) {
	if g.columns != 1 || availableRows < 1 {
		g.scrollOffset = 0
		return
	}
	g.viewportRows = availableRows
	if g.cursor >= g.scrollOffset && g.cursor < g.scrollOffset+availableRows {
		return
	}
	last := g.cursor + 2
	if last > len(g.items) {
		last = len(g.items)
	}
	offset := last - availableRows
	if offset < 0 {
		offset = 0
	}
	g.scrollOffset = offset
}

// visibleRange returns the current [start, end) item index window.
func (g *gridNav) visibleRange() (start, end int) {
	if g.columns != 1 {
		return 0, len(g.items)
	}
	start = g.scrollOffset
	end = g.scrollOffset + g.viewportRows
	if end > len(g.items) {
		end = len(g.items)
	}
	return start, end
}
