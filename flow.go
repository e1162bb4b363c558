package prompter

import "io"

// PromptProvider returns the next batch of prompts given the cumulative
// result map so far, or nil to terminate the run (§4.1 dynamic mode).
type PromptProvider func(results ResultMap) []*Prompt

// Flow is the controller driving a sequence of prompts against one shared
// header and result map, with one-step-back and whole-run cancellation.
type Flow struct {
	engine *engine
}

// NewFlow wires a fresh engine (terminal, reader, renderer, config).
func NewFlow() *Flow {
	return &Flow{engine: newEngine()}
}

// undoRecord captures what a single commit added, so back-navigation can
// remove exactly that much from the header and result map (§9).
type undoRecord struct {
	name             string
	headerLinesAdded int
}

// Run executes a static list of prompts under one shared header (§4.1.1).
func (f *Flow) Run(header []AttributedString, prompts []*Prompt) (ResultMap, error) {
	if len(prompts) == 0 {
		return ResultMap{}, nil
	}

	if !IsInteractiveTTY(f.engine.term.in) {
		defer f.engine.close()
		return f.runNonInteractive(header, prompts), nil
	}

	if err := f.engine.term.EnterRaw(); err != nil {
		return nil, &IOError{Op: "enter raw mode", Err: err}
	}
	logRawMode(f.engine.log, true)
	defer func() {
		logRawMode(f.engine.log, false)
		f.engine.term.ExitRaw()
		f.engine.close()
	}()

	return f.runStatic(header, prompts)
}

// runStatic holds Run's header/undo bookkeeping with no terminal-mode side
// effects, so it can be driven directly in tests against a fake reader.
func (f *Flow) runStatic(header []AttributedString, prompts []*Prompt) (ResultMap, error) {
	hdr := append([]AttributedString{}, header...)
	results := ResultMap{}
	undo := make([]undoRecord, 0, len(prompts))

	i := 0
	for i < len(prompts) {
		p := prompts[i]
		res, err := f.engine.execute(p, hdr)
		if err != nil {
			if _, ok := err.(*UserCancelled); ok {
				f.finalize(hdr, true)
				return ResultMap{}, err
			}
			f.finalize(hdr, false)
			return nil, err
		}

		if res == nil {
			if i > 0 {
				last := undo[len(undo)-1]
				undo = undo[:len(undo)-1]
				delete(results, last.name)
				hdr = hdr[:len(hdr)-last.headerLinesAdded]
				logHeaderMutation(f.engine.log, "pop", last.name)
				i--
				continue
			}
			if f.engine.cfg.CancellableFirstPrompt {
				f.finalize(hdr, true)
				return ResultMap{}, nil
			}
			continue
		}

		results[p.Name] = *res
		hdr = append(hdr, summaryLine(f.engine.cfg.Resolver, p, *res))
		undo = append(undo, undoRecord{name: p.Name, headerLinesAdded: 1})
		logHeaderMutation(f.engine.log, "append", p.Name)
		i++
	}

	f.finalize(hdr, false)
	return results, nil
}

// RunDynamic executes batches returned by provider, with batch-level back
// navigation mirroring Run's per-prompt back navigation (§4.1.2).
func (f *Flow) RunDynamic(header []AttributedString, provider PromptProvider) (ResultMap, error) {
	if !IsInteractiveTTY(f.engine.term.in) {
		defer f.engine.close()
		return f.runNonInteractiveDynamic(header, provider), nil
	}

	if err := f.engine.term.EnterRaw(); err != nil {
		return nil, &IOError{Op: "enter raw mode", Err: err}
	}
	logRawMode(f.engine.log, true)
	defer func() {
		logRawMode(f.engine.log, false)
		f.engine.term.ExitRaw()
		f.engine.close()
	}()

	return f.runDynamicLoop(header, provider)
}

// runDynamicLoop holds RunDynamic's batch bookkeeping with no terminal-mode
// side effects, so it can be driven directly in tests against a fake reader.
func (f *Flow) runDynamicLoop(header []AttributedString, provider PromptProvider) (ResultMap, error) {
	hdr := append([]AttributedString{}, header...)
	results := ResultMap{}

	type batch struct {
		prompts          []*Prompt
		names            []string
		headerLinesAdded int
	}
	var batches []batch

	for {
		prompts := provider(results)
		if len(prompts) == 0 {
			break
		}

		b := batch{prompts: prompts}
		i := 0
		aborted := false
		for i < len(prompts) {
			p := prompts[i]
			res, err := f.engine.execute(p, hdr)
			if err != nil {
				if _, ok := err.(*UserCancelled); ok {
					f.finalize(hdr, true)
					return ResultMap{}, err
				}
				f.finalize(hdr, false)
				return nil, err
			}

			if res == nil {
				if i > 0 {
					name := b.names[len(b.names)-1]
					b.names = b.names[:len(b.names)-1]
					delete(results, name)
					hdr = hdr[:len(hdr)-1]
					b.headerLinesAdded--
					i--
					continue
				}
				if len(batches) == 0 && f.engine.cfg.CancellableFirstPrompt {
					f.finalize(hdr, true)
					return ResultMap{}, nil
				}
				aborted = true
				break
			}

			results[p.Name] = *res
			hdr = append(hdr, summaryLine(f.engine.cfg.Resolver, p, *res))
			b.headerLinesAdded++
			b.names = append(b.names, p.Name)
			i++
		}

		if aborted {
			if len(batches) > 0 {
				prev := batches[len(batches)-1]
				batches = batches[:len(batches)-1]
				for _, name := range prev.names {
					delete(results, name)
				}
				hdr = hdr[:len(hdr)-prev.headerLinesAdded]
			}
			continue
		}

		batches = append(batches, b)
	}

	f.finalize(hdr, false)
	return results, nil
}

// runNonInteractive auto-commits every prompt's default value with no raw
// mode and no differential rendering: stdin isn't a TTY (piped/redirected),
// so there is no live cursor to drive. Each committed line is written as a
// plain ANSI string via AttributedString.String() instead (§6,
// IsInteractiveTTY).
func (f *Flow) runNonInteractive(header []AttributedString, prompts []*Prompt) ResultMap {
	results := ResultMap{}
	f.writeLines(header)
	for _, p := range prompts {
		res := defaultResult(p)
		results[p.Name] = res
		f.writeLines([]AttributedString{summaryLine(f.engine.cfg.Resolver, p, res)})
		logCommit(f.engine.log, p.Name, p.Kind)
	}
	return results
}

// runNonInteractiveDynamic mirrors runNonInteractive for RunDynamic: the
// provider is driven to completion, auto-committing every batch it yields.
func (f *Flow) runNonInteractiveDynamic(header []AttributedString, provider PromptProvider) ResultMap {
	results := ResultMap{}
	f.writeLines(header)
	for {
		prompts := provider(results)
		if len(prompts) == 0 {
			break
		}
		for _, p := range prompts {
			res := defaultResult(p)
			results[p.Name] = res
			f.writeLines([]AttributedString{summaryLine(f.engine.cfg.Resolver, p, res)})
			logCommit(f.engine.log, p.Name, p.Kind)
		}
	}
	return results
}

// writeLines prints each line as a plain ANSI string followed by a
// terminal-style CRLF, bypassing the cursor-relative differential renderer.
func (f *Flow) writeLines(lines []AttributedString) {
	for _, l := range lines {
		io.WriteString(f.engine.term.out, l.String()+"\r\n")
	}
}

// defaultResult auto-commits a prompt's default answer for non-interactive
// runs: Input's DefaultValue, the first selectable List item, a Choice
// item's AsDefault mark, a Checkbox's InitiallyChecked set, Confirm's
// DefaultConfirm, or Text's no-op commit.
func defaultResult(p *Prompt) PromptResult {
	switch p.Kind {
	case KindInput:
		return PromptResult{Kind: ResultInput, Name: p.Name, StringValue: p.DefaultValue}
	case KindList:
		value := ""
		if i := firstSelectable(p.Items); i >= 0 {
			value = p.Items[i].Name
		}
		return PromptResult{Kind: ResultList, Name: p.Name, StringValue: value}
	case KindCheckbox:
		set := map[string]struct{}{}
		for _, it := range p.Items {
			if it.Selectable && it.InitiallyChecked {
				set[it.Name] = struct{}{}
			}
		}
		return PromptResult{Kind: ResultCheckbox, Name: p.Name, Set: set}
	case KindChoice:
		value := ""
		if it, ok := defaultChoiceItem(p.Items); ok {
			value = it.Name
		}
		return PromptResult{Kind: ResultChoice, Name: p.Name, StringValue: value}
	case KindConfirm:
		return PromptResult{Kind: ResultConfirm, Name: p.Name, BoolValue: p.DefaultConfirm}
	default:
		return PromptResult{Kind: ResultText, Name: p.Name}
	}
}

// finalize rewrites the final screen to show only the accumulated header,
// with no live cursor artefacts, and a trailing newline on cancellation.
func (f *Flow) finalize(header []AttributedString, cancelled bool) {
	f.engine.display.Render(header, len(header), 0, f.engine.term.Size())
	f.engine.display.FinalizeHeight()
	if cancelled {
		f.engine.term.out.Write([]byte("\r\n"))
	}
}

// summaryLine formats the "? message answer" header line appended on
// commit. Text prompts omit the answer; Confirm renders yes/no.
func summaryLine(r StyleResolver, p *Prompt, res PromptResult) AttributedString {
	marker := NewAttributedString("? ", r.Marker)
	line := marker.AppendString(p.Message)

	switch res.Kind {
	case ResultText:
		return line
	case ResultConfirm:
		answer := "no"
		if res.BoolValue {
			answer = "yes"
		}
		return line.Append(" ", DefaultStyle()).Append(answer, r.Answer)
	case ResultCheckbox:
		names := make([]string, 0, len(res.Set))
		for name := range res.Set {
			names = append(names, name)
		}
		return line.Append(" ", DefaultStyle()).Append(joinNames(names), r.Answer)
	default:
		// List/Choice commit the selected item's Name; the header shows its
		// Text instead, since the two can differ.
		answer := res.StringValue
		if it, ok := itemByName(p.Items, res.StringValue); ok {
			answer = it.Text.plainText()
		}
		return line.Append(" ", DefaultStyle()).Append(answer, r.Answer)
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// execute dispatches a Prompt to its executor by Kind.
func (e *engine) execute(p *Prompt, header []AttributedString) (*PromptResult, error) {
	switch p.Kind {
	case KindInput:
		return e.runInput(p, header)
	case KindList:
		return e.runList(p, header)
	case KindCheckbox:
		return e.runCheckbox(p, header)
	case KindChoice:
		return e.runChoice(p, header)
	case KindConfirm:
		return e.runConfirm(p, header)
	case KindText:
		return e.runText(p, header)
	default:
		return nil, &UsageError{Msg: "unknown prompt kind"}
	}
}
