package prompter

import "strings"

// restyle replaces every segment's style with s, used when a cursor row or
// a disabled item must render in a uniform emphasis style regardless of
// whatever style the item's own text segments carry.
func restyle(a AttributedString, s Style) AttributedString {
	return NewAttributedString(a.plainText(), s)
}

// plainText concatenates an AttributedString's segment text, discarding
// style, for use as input to a forced restyle.
func (a AttributedString) plainText() string {
	var b strings.Builder
	for _, seg := range a.segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// itemPrefixWidth returns the cell width of the indicator/shortcut/checkbox
// prefix rendered before an item's text, used by gridNav.layout to size
// columns.
func (e *engine) itemPrefixWidth(it PromptItem, hasCheckbox bool) int {
	w := Plain(e.cfg.Indicator).ColumnLength() + 1 // indicator or its pad, plus separating space
	if hasCheckbox {
		w += Plain(e.cfg.CheckedBox).ColumnLength()
	}
	if it.Shortcut != 0 {
		w += Plain("(" + string(it.Shortcut) + ") ").ColumnLength()
	}
	return w
}

// renderItemLine builds one PromptItem's styled row (§4.4 rendering
// rules). checkbox, when non-empty, is the glyph the Checkbox executor
// inserts between the indicator column and the text.
func (e *engine) renderItemLine(it PromptItem, cursor bool, checkbox string) AttributedString {
	r := e.cfg.Resolver
	indicatorWidth := Plain(e.cfg.Indicator).ColumnLength()

	var line AttributedString
	if it.Selectable && cursor {
		line = NewAttributedString(e.cfg.Indicator, r.Cursor)
	} else {
		line = Plain(strings.Repeat(" ", indicatorWidth))
	}
	line = line.Append(" ", DefaultStyle())

	if checkbox != "" {
		line = line.Append(checkbox, r.Checkbox)
	}

	if it.Shortcut != 0 {
		line = line.Append("("+string(it.Shortcut)+") ", r.Marker)
	}

	switch {
	case !it.Selectable && it.Disabled:
		line = line.AppendString(restyle(it.Text, r.Disabled))
		line = line.Append(" ("+it.DisabledText+")", r.Disabled)
	case !it.Selectable:
		line = line.AppendString(restyle(it.Text, r.Disabled))
	case cursor:
		line = line.AppendString(restyle(it.Text, r.Selected))
	default:
		line = line.AppendString(it.Text)
	}
	return line
}

// padToWidth pads a rendered item cell with trailing spaces to width
// visible columns, for multi-column layout where cells must align. A cell
// already at least width columns wide is returned unchanged, not truncated.
func padToWidth(s AttributedString, width int) AttributedString {
	w := s.ColumnLength()
	if w >= width {
		return s
	}
	return s.Append(strings.Repeat(" ", width-w), DefaultStyle())
}

// renderGridBody lays out items into body lines: single column in
// pagination order, or multi-column with padded cells separated by
// gridMargin spaces (§4.4).
func (e *engine) renderGridBody(g *gridNav, checkboxGlyph func(it PromptItem) string) []AttributedString {
	if g.columns == 1 {
		start, end := g.visibleRange()
		lines := make([]AttributedString, 0, end-start)
		for i := start; i < end; i++ {
			it := g.items[i]
			cb := ""
			if checkboxGlyph != nil {
				cb = checkboxGlyph(it)
			}
			lines = append(lines, e.renderItemLine(it, i == g.cursor, cb))
		}
		return lines
	}

	columnWidth := 0
	for i := range g.items {
		cb := ""
		if checkboxGlyph != nil {
			cb = checkboxGlyph(g.items[i])
		}
		if w := e.renderItemLine(g.items[i], i == g.cursor, cb).ColumnLength(); w > columnWidth {
			columnWidth = w
		}
	}

	rows := ceilDiv(len(g.items), g.columns)
	lines := make([]AttributedString, 0, rows)
	for row := 0; row < rows; row++ {
		var line AttributedString
		for col := 0; col < g.columns; col++ {
			idx := g.indexAt(row, col)
			if idx < 0 {
				continue
			}
			cb := ""
			if checkboxGlyph != nil {
				cb = checkboxGlyph(g.items[idx])
			}
			cell := padToWidth(e.renderItemLine(g.items[idx], idx == g.cursor, cb), columnWidth)
			if col > 0 {
				line = line.Append(strings.Repeat(" ", gridMargin), DefaultStyle())
			}
			line = line.AppendString(cell)
		}
		lines = append(lines, line)
	}
	return lines
}
