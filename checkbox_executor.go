package prompter

// runCheckbox drives the Checkbox executor (§4.5): List's navigation plus
// a per-item toggle state committed as a set on EXIT.
func (e *engine) runCheckbox(p *Prompt, header []AttributedString) (*PromptResult, error) {
	nav := newGridNav(p.Items)
	if nav.empty() {
		logCommit(e.log, p.Name, p.Kind)
		return &PromptResult{Kind: ResultCheckbox, Name: p.Name, Set: map[string]struct{}{}}, nil
	}

	checked := make(map[string]struct{})
	for _, it := range p.Items {
		if it.Selectable && it.InitiallyChecked {
			checked[it.Name] = struct{}{}
		}
	}

	marker := NewAttributedString("? ", e.cfg.Resolver.Marker)
	messageLine := marker.AppendString(p.Message)

	km := defaultGridKeyMap(e.caps)
	br := NewBindingReader(e.reader, km)

	glyph := func(it PromptItem) string {
		if _, ok := checked[it.Name]; ok {
			return e.cfg.CheckedBox
		}
		if !it.Selectable {
			return e.cfg.Unavailable
		}
		return e.cfg.UncheckedBox
	}

	for {
		size := e.term.Size()
		availableRows := size.Rows - len(header) - 1
		if availableRows < 1 {
			availableRows = 1
		}

		nav.layout(func(i int) int {
			return e.itemPrefixWidth(nav.items[i], true) + nav.items[i].Text.ColumnLength()
		}, size.Cols, availableRows)

		nav.ensureVisible(availableRows)

		body := e.renderGridBody(nav, glyph)
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
		case OpToggle:
			it := nav.items[nav.cursor]
			if it.Selectable {
				if _, ok := checked[it.Name]; ok {
					delete(checked, it.Name)
				} else {
					checked[it.Name] = struct{}{}
				}
			}
		case OpExit:
			logCommit(e.log, p.Name, p.Kind)
			return &PromptResult{Kind: ResultCheckbox, Name: p.Name, Set: checked}, nil
		case OpEscape:
			logBack(e.log, p.Name)
			return nil, nil
		case OpCancel:
			logCancel(e.log, p.Name)
			return nil, &UserCancelled{}
		}
	}
}
