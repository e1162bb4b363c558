package prompter

// runText drives the Text executor: a static styled block that commits
// automatically without waiting for input.
func (e *engine) runText(p *Prompt, header []AttributedString) (*PromptResult, error) {
	r := e.cfg.Resolver
	marker := NewAttributedString("? ", r.Marker)
	line := marker.AppendString(p.Message)

	frame := frameLines(header, line, p.Body)
	e.display.Render(frame, len(frame)-1, p.Body.ColumnLength(), e.term.Size())

	logCommit(e.log, p.Name, p.Kind)
	return &PromptResult{Kind: ResultText, Name: p.Name}, nil
}
