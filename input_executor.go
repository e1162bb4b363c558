package prompter

import "strings"

// runInput drives the Input executor's state machine (§4.3): an editable
// rune buffer with a parallel display buffer (mask-substituted when a mask
// is set), a column cursor, and commit/back/cancel handling.
func (e *engine) runInput(p *Prompt, header []AttributedString) (*PromptResult, error) {
	km := defaultInputKeyMap(e.caps)
	br := NewBindingReader(e.reader, km)

	var buf []rune
	col := 0
	var errLine *AttributedString

	for {
		frame, row, frameCol := e.renderInputFrame(p, header, buf, col, errLine)
		e.display.Render(frame, row, frameCol, e.term.Size())
		errLine = nil

		op, err := br.ReadBinding()
		if err != nil {
			return nil, &IOError{Op: "read input", Err: err}
		}

		switch op {
		case OpInsert:
			r := br.LastRune()
			buf = insertRune(buf, col, r)
			col++
		case OpBackspace:
			if col > 0 {
				buf = append(buf[:col-1], buf[col:]...)
				col--
			}
		case OpDelete:
			if col < len(buf) {
				buf = append(buf[:col], buf[col+1:]...)
			}
		case OpLeft:
			if col > 0 {
				col--
			}
		case OpRight:
			if col < len(buf) {
				col++
			}
		case OpBeginningOfLine:
			col = 0
		case OpEndOfLine:
			col = len(buf)
		case OpExit:
			value := string(buf)
			if value == "" && p.DefaultValue != "" {
				value = p.DefaultValue
			}
			if p.Validator != nil {
				if verr := p.Validator(value); verr != nil {
					line := renderError(e.cfg.Resolver, verr)
					errLine = &line
					continue
				}
			}
			logCommit(e.log, p.Name, p.Kind)
			return &PromptResult{Kind: ResultInput, Name: p.Name, StringValue: value}, nil
		case OpEscape:
			logBack(e.log, p.Name)
			return nil, nil
		case OpCancel:
			logCancel(e.log, p.Name)
			return nil, &UserCancelled{}
		}
	}
}

func insertRune(buf []rune, at int, r rune) []rune {
	out := make([]rune, 0, len(buf)+1)
	out = append(out, buf[:at]...)
	out = append(out, r)
	out = append(out, buf[at:]...)
	return out
}

// renderInputFrame builds the Input prompt's single message line (plus an
// optional inline validation error line) and the cursor position within it.
func (e *engine) renderInputFrame(p *Prompt, header []AttributedString, buf []rune, col int, errLine *AttributedString) (frame []AttributedString, row, cursorCol int) {
	marker := NewAttributedString("? ", e.cfg.Resolver.Marker)

	display := string(buf)
	if p.Mask != 0 {
		display = strings.Repeat(string(p.Mask), len(buf))
	}

	line := marker.AppendString(p.Message).Append(" ", DefaultStyle()).Append(display, e.cfg.Resolver.Answer)

	body := []AttributedString{line}
	if errLine != nil {
		body = append(body, *errLine)
	}

	prefixWidth := marker.ColumnLength() + p.Message.ColumnLength() + 1
	return frameLines(header, body...), len(header), prefixWidth + col
}
