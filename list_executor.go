package prompter

// runList drives the List executor (§4.4): single-select navigation over a
// possibly multi-column grid of items, with shortcut-jump and pagination.
func (e *engine) runList(p *Prompt, header []AttributedString) (*PromptResult, error) {
	nav := newGridNav(p.Items)
	if nav.empty() {
		logCommit(e.log, p.Name, p.Kind)
		return &PromptResult{Kind: ResultList, Name: p.Name}, nil
	}

	marker := NewAttributedString("? ", e.cfg.Resolver.Marker)
	messageLine := marker.AppendString(p.Message)

	km := defaultGridKeyMap(e.caps)
	br := NewBindingReader(e.reader, km)

	for {
		size := e.term.Size()
		availableRows := size.Rows - len(header) - 1
		if availableRows < 1 {
			availableRows = 1
		}

		nav.layout(func(i int) int {
			return e.itemPrefixWidth(nav.items[i], false) + nav.items[i].Text.ColumnLength()
		}, size.Cols, availableRows)

		nav.ensureVisible(availableRows)

		body := e.renderGridBody(nav, nil)
		frame := frameLines(header, append([]AttributedString{messageLine}, body...)...)
		e.display.Render(frame, 0, 0, size)

		op, err := br.ReadBinding()
		if err != nil {
			return nil, &IOError{Op: "read input", Err: err}
		}

		switch op {
		case OpForwardLine:
			nav.forwardLine()
		case OpBackwardLine:
			nav.backwardLine()
		case OpForwardColumn:
			nav.forwardColumn()
		case OpBackwardColumn:
			nav.backwardColumn()
		case OpInsert:
			nav.jumpToShortcut(br.LastRune())
		case OpExit:
			item := nav.items[nav.cursor]
			logCommit(e.log, p.Name, p.Kind)
			return &PromptResult{Kind: ResultList, Name: p.Name, StringValue: item.Name}, nil
		case OpEscape:
			logBack(e.log, p.Name)
			return nil, nil
		case OpCancel:
			logCancel(e.log, p.Name)
			return nil, &UserCancelled{}
		}
	}
}
