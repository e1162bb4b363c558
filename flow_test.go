package prompter

import "testing"

func plainOf(a AttributedString) string { return a.plainText() }

func TestSummaryLineOmitsAnswerForText(t *testing.T) {
	r := DefaultDarkResolver()
	p := NewTextPrompt("done", Plain("Finished"), Plain("body"))
	line := summaryLine(r, p, PromptResult{Kind: ResultText, Name: "done"})
	if plainOf(line) != "? Finished" {
		t.Errorf("got %q, want \"? Finished\" with no answer", plainOf(line))
	}
}

func TestSummaryLineConfirmRendersYesNo(t *testing.T) {
	r := DefaultDarkResolver()
	p := NewConfirmPrompt("ok", Plain("Proceed?"), false)
	line := summaryLine(r, p, PromptResult{Kind: ResultConfirm, Name: "ok", BoolValue: true})
	if plainOf(line) != "? Proceed? yes" {
		t.Errorf("got %q, want \"? Proceed? yes\"", plainOf(line))
	}
}

func TestSummaryLineListRendersSelection(t *testing.T) {
	r := DefaultDarkResolver()
	p := NewListPrompt("env", Plain("Env:"), NewPromptItem("staging", Plain("staging")))
	line := summaryLine(r, p, PromptResult{Kind: ResultList, Name: "env", StringValue: "staging"})
	if plainOf(line) != "? Env: staging" {
		t.Errorf("got %q, want \"? Env: staging\"", plainOf(line))
	}
}

func TestSummaryLineListRendersItemTextNotName(t *testing.T) {
	// The header must show the item's Text, not its Name, when they differ.
	r := DefaultDarkResolver()
	p := NewListPrompt("env", Plain("Env:"), NewPromptItem("prod-us-east-1", Plain("US East (Production)")))
	line := summaryLine(r, p, PromptResult{Kind: ResultList, Name: "env", StringValue: "prod-us-east-1"})
	if plainOf(line) != "? Env: US East (Production)" {
		t.Errorf("got %q, want \"? Env: US East (Production)\"", plainOf(line))
	}
}

func TestJoinNamesOrdering(t *testing.T) {
	if got := joinNames(nil); got != "" {
		t.Errorf("joinNames(nil) = %q, want empty", got)
	}
	if got := joinNames([]string{"a"}); got != "a" {
		t.Errorf("joinNames single = %q, want \"a\"", got)
	}
	if got := joinNames([]string{"a", "b"}); got != "a, b" {
		t.Errorf("joinNames pair = %q, want \"a, b\"", got)
	}
}

func TestFlowRunEmptyPromptsNoOp(t *testing.T) {
	// An empty prompt list must short-circuit before ever touching the
	// terminal (spec boundary case: no raw-mode entry needed).
	f := &Flow{engine: newTestEngine(t, "")}
	results, err := f.Run(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result map, got %+v", results)
	}
}

func TestFlowRunBackNavigationRewritesAnswer(t *testing.T) {
	// Two Input prompts: commit "X" to the first, back out of the second
	// with Escape, which re-runs the first; answer it "A" this time, then
	// answer the second "B". The rewound prompt must lose its header line
	// and result entry before being re-answered.
	f := &Flow{engine: newTestEngine(t, "X\r\x1bA\rB\r")}
	prompts := []*Prompt{
		NewInputPrompt("u", Plain("First?")),
		NewInputPrompt("v", Plain("Second?")),
	}
	results, err := f.runStatic(nil, prompts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results["u"].StringValue != "A" {
		t.Errorf("u = %q, want \"A\"", results["u"].StringValue)
	}
	if results["v"].StringValue != "B" {
		t.Errorf("v = %q, want \"B\"", results["v"].StringValue)
	}
}

func TestFlowRunCancelFirstPromptReturnsEmptyMap(t *testing.T) {
	// Escaping out of the very first prompt, with CancellableFirstPrompt
	// left at its default (true), ends the run with no error and no
	// results rather than propagating a back-navigation request.
	f := &Flow{engine: newTestEngine(t, "\x1b")}
	prompts := []*Prompt{NewInputPrompt("u", Plain("Name?"))}
	results, err := f.runStatic(nil, prompts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result map, got %+v", results)
	}
}

func TestFlowRunNonInteractiveAutoCommitsDefaults(t *testing.T) {
	// newTestEngine's terminal has a nil *os.File for term.in, which
	// IsInteractiveTTY reports as non-interactive (an invalid fd can't be a
	// tty) — exercising Run's real non-interactive branch end to end,
	// with no raw mode and no input consumed.
	f := &Flow{engine: newTestEngine(t, "")}
	prompts := []*Prompt{
		NewInputPrompt("name", Plain("Name?")).WithDefault("anon"),
		NewConfirmPrompt("ok", Plain("Proceed?"), true),
		NewListPrompt("env", Plain("Env:"), NewPromptItem("staging", Plain("staging")), NewPromptItem("prod", Plain("prod"))),
	}
	results, err := f.Run(nil, prompts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results["name"].StringValue != "anon" {
		t.Errorf("name = %q, want \"anon\"", results["name"].StringValue)
	}
	if !results["ok"].BoolValue {
		t.Errorf("ok = %+v, want true (DefaultConfirm)", results["ok"])
	}
	if results["env"].StringValue != "staging" {
		t.Errorf("env = %q, want \"staging\" (first selectable item)", results["env"].StringValue)
	}
}

func TestFlowRunDynamicNonInteractiveDrivesProviderToCompletion(t *testing.T) {
	f := &Flow{engine: newTestEngine(t, "")}
	asked := 0
	provider := func(results ResultMap) []*Prompt {
		if _, ok := results["wantOptions"]; !ok {
			return []*Prompt{NewConfirmPrompt("wantOptions", Plain("Configure options?"), true)}
		}
		asked++
		if asked > 1 {
			return nil
		}
		return []*Prompt{NewCheckboxPrompt("options", Plain("Pick:"), NewPromptItem("a", Plain("a")).AsChecked())}
	}
	results, err := f.RunDynamic(nil, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results["wantOptions"].BoolValue {
		t.Errorf("wantOptions = %+v, want true (DefaultConfirm)", results["wantOptions"])
	}
	if _, ok := results["options"].Set["a"]; !ok {
		t.Errorf("options = %+v, want {a} (InitiallyChecked)", results["options"])
	}
}

func TestFlowRunDynamicBatchBackNavigation(t *testing.T) {
	// First batch commits "wantOptions"=yes. Second batch (the checkbox)
	// is escaped out of on its first prompt, which steps back across
	// batches: the first batch's answer and header line are popped and the
	// provider asks it again. Answering yes again, the provider is asked a
	// second time for a follow-up and terminates by returning nil.
	f := &Flow{engine: newTestEngine(t, "y\x1by")}
	asked := 0
	provider := func(results ResultMap) []*Prompt {
		if _, ok := results["wantOptions"]; !ok {
			return []*Prompt{NewConfirmPrompt("wantOptions", Plain("Configure options?"), false)}
		}
		asked++
		if asked > 1 {
			return nil
		}
		return []*Prompt{NewCheckboxPrompt("options", Plain("Pick:"), NewPromptItem("a", Plain("a")))}
	}
	results, err := f.runDynamicLoop(nil, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results["wantOptions"].BoolValue {
		t.Errorf("wantOptions = %+v, want true", results["wantOptions"])
	}
	if _, ok := results["options"]; ok {
		t.Errorf("options should have been dropped by the escaped batch, got %+v", results["options"])
	}
}
