package prompter

import "unicode"

// runConfirm drives the Confirm executor: a yes/no prompt committed by a
// typed 'y'/'n' (case-insensitive) or by Enter, which commits DefaultConfirm.
func (e *engine) runConfirm(p *Prompt, header []AttributedString) (*PromptResult, error) {
	km := defaultChoiceKeyMap()
	br := NewBindingReader(e.reader, km)

	var errLine *AttributedString

	for {
		frame, row, col := e.renderConfirmFrame(p, header, errLine)
		e.display.Render(frame, row, col, e.term.Size())
		errLine = nil

		op, err := br.ReadBinding()
		if err != nil {
			return nil, &IOError{Op: "read input", Err: err}
		}

		var value bool
		var decided bool

		switch op {
		case OpInsert:
			switch unicode.ToLower(br.LastRune()) {
			case 'y':
				value, decided = true, true
			case 'n':
				value, decided = false, true
			}
		case OpExit:
			value, decided = p.DefaultConfirm, true
		case OpEscape:
			logBack(e.log, p.Name)
			return nil, nil
		case OpCancel:
			logCancel(e.log, p.Name)
			return nil, &UserCancelled{}
		}

		if !decided {
			continue
		}

		if p.ConfirmValidator != nil {
			if verr := p.ConfirmValidator(value); verr != nil {
				line := renderError(e.cfg.Resolver, verr)
				errLine = &line
				continue
			}
		}

		logCommit(e.log, p.Name, p.Kind)
		return &PromptResult{Kind: ResultConfirm, Name: p.Name, BoolValue: value}, nil
	}
}

// renderConfirmFrame builds the "message (y/n)" line plus an optional
// inline validation error line.
func (e *engine) renderConfirmFrame(p *Prompt, header []AttributedString, errLine *AttributedString) (frame []AttributedString, row, col int) {
	r := e.cfg.Resolver
	marker := NewAttributedString("? ", r.Marker)
	hint := "(y/n) "
	if p.DefaultConfirm {
		hint = "(Y/n) "
	} else {
		hint = "(y/N) "
	}

	line := marker.AppendString(p.Message).Append(" ", DefaultStyle()).Append(hint, r.Disabled)

	body := []AttributedString{line}
	if errLine != nil {
		body = append(body, *errLine)
	}

	frame = frameLines(header, body...)
	return frame, len(header), line.ColumnLength()
}
