package prompter

import (
	"bytes"
	"io"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-runewidth"
)

// Size is a terminal's dimensions in character cells.
type Size struct {
	Rows, Cols int
}

// Display is the cell-oriented differential renderer (spec component C). It
// renders inline — never via the alternate screen — so cursor motion is
// always relative to the frame's own top-left, not an absolute terminal
// origin. Render is idempotent: calling it twice with an identical frame
// emits nothing the second time.
type Display struct {
	out  io.Writer
	caps capabilities
	buf  bytes.Buffer

	haveFrame  bool
	prevSize   Size
	prevBuffer *Buffer
	prevLines  int
	rowLen     []int // visible column width of each row in the last frame

	curRow, curCol int // where the real terminal cursor sits, frame-relative
	lastStyle      Style
	styleValid     bool
}

// NewDisplay creates a Display writing diffed frames to out, resolving
// terminfo capabilities for the current TERM.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out, caps: loadCapabilities()}
}

// Render draws lines (one AttributedString per row, row 0 is the frame's
// first/top line), places the cursor at (cursorRow, cursorCol) relative to
// that same origin, and writes the minimal escape-sequence diff against the
// previously rendered frame. size is re-queried by the caller at the start
// of every frame (§4.7); a change since the last call forces a full redraw.
func (d *Display) Render(lines []AttributedString, cursorRow, cursorCol int, size Size) {
	cols := size.Cols
	if cols <= 0 {
		cols = 1
	}
	rows := len(lines)

	if !d.haveFrame || size != d.prevSize {
		d.startOver(size)
	}

	height := rows
	if d.prevLines > height {
		height = d.prevLines
	}
	target := NewBuffer(cols, height)
	newRowLen := make([]int, height)
	for y, l := range lines {
		target.WriteLine(0, y, l)
		w := l.ColumnLength()
		if w > cols {
			w = cols
		}
		newRowLen[y] = w
	}

	d.buf.Reset()

	for y := 0; y < height; y++ {
		oldLen := 0
		if y < len(d.rowLen) {
			oldLen = d.rowLen[y]
		}
		for x := 0; x < cols; x++ {
			tc := target.Get(x, y)
			var pc Cell
			if d.prevBuffer != nil {
				pc = d.prevBuffer.Get(x, y)
			} else {
				pc = EmptyCell()
			}
			if tc == pc {
				continue
			}
			if tc.Rune == 0 {
				// trailing half of a wide rune already painted by its leader
				continue
			}
			d.moveTo(y, x)
			d.writeCell(tc)
		}
		if newRowLen[y] < oldLen {
			d.moveTo(y, newRowLen[y])
			d.buf.WriteString(d.caps.clrEol)
		}
	}

	d.moveTo(cursorRow, cursorCol)

	if d.buf.Len() > 0 {
		d.out.Write(d.buf.Bytes())
	}

	d.prevBuffer = target
	d.prevSize = size
	d.prevLines = rows
	d.rowLen = newRowLen
	d.haveFrame = true
}

// startOver discards the previous frame so the next Render performs a full
// draw (used on the very first frame, and whenever the terminal resizes).
func (d *Display) startOver(size Size) {
	if d.haveFrame && d.prevLines > 0 {
		// return the cursor to the frame's top line before abandoning it, so
		// a resized redraw starts from the same place a clean terminal would.
		d.out.Write([]byte(d.caps.moveUp(d.curRow) + "\r"))
	}
	d.prevBuffer = nil
	d.prevLines = 0
	d.rowLen = nil
	d.curRow, d.curCol = 0, 0
	d.styleValid = false
	d.haveFrame = true
	d.prevSize = size
}

// moveTo repositions the real cursor to frame-relative (row, col), emitting
// only the relative motion actually needed.
func (d *Display) moveTo(row, col int) {
	if row != d.curRow {
		if row > d.curRow {
			d.buf.WriteString(d.caps.moveDown(row - d.curRow))
		} else {
			d.buf.WriteString(d.caps.moveUp(d.curRow - row))
		}
		d.buf.WriteByte('\r')
		d.curCol = 0
	} else if col < d.curCol {
		d.buf.WriteByte('\r')
		d.curCol = 0
	}
	if col > d.curCol {
		d.buf.WriteString(d.caps.moveForward(col - d.curCol))
	}
	d.curRow, d.curCol = row, col
}

// writeCell emits a cell's SGR style transition (only if it differs from the
// last style written) followed by its rune, then advances the tracked
// column by the rune's display width.
func (d *Display) writeCell(c Cell) {
	if !d.styleValid || !c.Style.Equal(d.lastStyle) {
		writeSGR(&d.buf, c.Style)
		d.lastStyle = c.Style
		d.styleValid = true
	}
	d.buf.WriteRune(c.Rune)
	if runewidth.RuneWidth(c.Rune) == 2 {
		d.curCol += 2
	} else {
		d.curCol++
	}
}

// FinalizeHeight moves the cursor down to the last line of the last
// rendered frame if it sits above that line (a cursor already on or below
// it stays on its line), returns it to column 0 and resets the style,
// without writing a trailing newline itself — the flow controller decides
// whether to print one so the last prompt's output never unexpectedly
// scrolls the screen (§4.7 contract).
func (d *Display) FinalizeHeight() {
	if !d.haveFrame {
		return
	}
	var b bytes.Buffer
	if d.prevLines-1 > d.curRow {
		b.WriteString(d.caps.moveDown(d.prevLines - 1 - d.curRow))
	}
	b.WriteByte('\r')
	if d.styleValid && d.lastStyle != DefaultStyle() {
		writeSGR(&b, DefaultStyle())
	}
	d.out.Write(b.Bytes())
	d.haveFrame = false
}

// writeSGR writes the ANSI SGR escape sequence selecting the given style.
// Cell-level diffing needs per-rune style control with coalescing on
// change, which is cheaper done directly than through a styling library
// invoked once per cell; AttributedString.String() (style.go) uses lipgloss
// instead for whole-segment rendering outside the diff path.
func writeSGR(buf *bytes.Buffer, s Style) {
	buf.WriteString("\x1b[0")
	if s.Attr.Has(AttrBold) {
		buf.WriteString(";1")
	}
	if s.Attr.Has(AttrDim) {
		buf.WriteString(";2")
	}
	if s.Attr.Has(AttrItalic) {
		buf.WriteString(";3")
	}
	if s.Attr.Has(AttrUnderline) {
		buf.WriteString(";4")
	}
	if s.Attr.Has(AttrInverse) {
		buf.WriteString(";7")
	}
	writeSGRColor(buf, s.FG, true)
	writeSGRColor(buf, s.BG, false)
	buf.WriteByte('m')
}

func writeSGRColor(buf *bytes.Buffer, c Color, fg bool) {
	if activeProfile <= colorprofile.Ascii && c.Mode != ColorDefault {
		// ascii/no-color profile: never emit color codes, only attributes.
		return
	}
	switch c.Mode {
	case ColorDefault:
		return
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		buf.WriteByte(';')
		buf.WriteString(itoa(base + idx))
	case Color256:
		if fg {
			buf.WriteString(";38;5;")
		} else {
			buf.WriteString(";48;5;")
		}
		buf.WriteString(itoa(int(c.Index)))
	case ColorRGB:
		if fg {
			buf.WriteString(";38;2;")
		} else {
			buf.WriteString(";48;2;")
		}
		buf.WriteString(itoa(int(c.R)))
		buf.WriteByte(';')
		buf.WriteString(itoa(int(c.G)))
		buf.WriteByte(';')
		buf.WriteString(itoa(int(c.B)))
	}
}
