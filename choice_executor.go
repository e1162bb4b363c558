package prompter

import "unicode"

// runChoice drives the Choice executor (§4.6): no cursor, items printed
// once, a single "Choice: " line waits for a shortcut keypress.
func (e *engine) runChoice(p *Prompt, header []AttributedString) (*PromptResult, error) {
	km := defaultChoiceKeyMap()
	br := NewBindingReader(e.reader, km)

	var echo rune

	for {
		frame, row, col := e.renderChoiceFrame(p, header, echo)
		e.display.Render(frame, row, col, e.term.Size())

		op, err := br.ReadBinding()
		if err != nil {
			return nil, &IOError{Op: "read input", Err: err}
		}

		switch op {
		case OpInsert:
			r := br.LastRune()
			if it, ok := matchShortcut(p.Items, r); ok {
				echo = it.Shortcut
				frame, row, col := e.renderChoiceFrame(p, header, echo)
				e.display.Render(frame, row, col, e.term.Size())
				logCommit(e.log, p.Name, p.Kind)
				return &PromptResult{Kind: ResultChoice, Name: p.Name, StringValue: it.Name}, nil
			}
		case OpExit:
			if it, ok := defaultChoiceItem(p.Items); ok {
				echo = it.Shortcut
				frame, row, col := e.renderChoiceFrame(p, header, echo)
				e.display.Render(frame, row, col, e.term.Size())
				logCommit(e.log, p.Name, p.Kind)
				return &PromptResult{Kind: ResultChoice, Name: p.Name, StringValue: it.Name}, nil
			}
			// no default: keep waiting
		case OpEscape:
			logBack(e.log, p.Name)
			return nil, nil
		case OpCancel:
			logCancel(e.log, p.Name)
			return nil, &UserCancelled{}
		}
	}
}

// matchShortcut finds the first selectable item whose Shortcut matches r
// case-insensitively.
func matchShortcut(items []PromptItem, r rune) (PromptItem, bool) {
	lr := unicode.ToLower(r)
	for _, it := range items {
		if it.Selectable && it.Shortcut != 0 && unicode.ToLower(it.Shortcut) == lr {
			return it, true
		}
	}
	return PromptItem{}, false
}

// defaultChoiceItem returns the item marked via AsDefault, if any.
func defaultChoiceItem(items []PromptItem) (PromptItem, bool) {
	for _, it := range items {
		if it.Selectable && it.Default {
			return it, true
		}
	}
	return PromptItem{}, false
}

// renderChoiceFrame renders every item once, followed by the "Choice: "
// prompt line echoing whatever shortcut has been typed so far.
func (e *engine) renderChoiceFrame(p *Prompt, header []AttributedString, echo rune) (frame []AttributedString, row, col int) {
	r := e.cfg.Resolver
	marker := NewAttributedString("? ", r.Marker)
	messageLine := marker.AppendString(p.Message)

	body := []AttributedString{messageLine}
	for _, it := range p.Items {
		body = append(body, e.renderItemLine(it, false, ""))
	}

	choiceLabel := NewAttributedString("Choice: ", r.Message)
	if echo != 0 {
		choiceLabel = choiceLabel.Append(string(echo), r.Answer)
	}
	body = append(body, choiceLabel)

	frame = frameLines(header, body...)
	return frame, len(frame) - 1, choiceLabel.ColumnLength()
}
