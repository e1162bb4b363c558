package prompter

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// newTestEngine builds an engine over an in-memory input stream and a
// discarded output buffer, mirroring the teacher's pattern of constructing
// internal structs directly for white-box tests rather than going through
// the OS-touching constructor (newEngine dials a real TTY).
func newTestEngine(t *testing.T, input string) *engine {
	t.Helper()
	term := &terminal{fd: -1, caps: loadCapabilities()}
	return &engine{
		term:    term,
		reader:  NewNonBlockingReader(strings.NewReader(input)),
		display: NewDisplay(&bytes.Buffer{}),
		caps:    term.caps,
		cfg:     DefaultConfig(),
		log:     zap.NewNop(),
	}
}

func TestRunInputCommitsDefault(t *testing.T) {
	e := newTestEngine(t, "\r")
	p := NewInputPrompt("u", Plain("Name?")).WithDefault("John Doe")

	res, err := e.runInput(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "John Doe" {
		t.Errorf("got %q, want default value", res.StringValue)
	}
}

func TestRunInputTypedOverridesDefault(t *testing.T) {
	e := newTestEngine(t, "Ann\r")
	p := NewInputPrompt("u", Plain("Name?")).WithDefault("John Doe")

	res, err := e.runInput(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "Ann" {
		t.Errorf("got %q, want \"Ann\"", res.StringValue)
	}
}

func TestRunInputBackspaceEdits(t *testing.T) {
	e := newTestEngine(t, "Anna\x7f\r") // types "Anna", backspace, enter -> "Ann"
	p := NewInputPrompt("u", Plain("Name?"))

	res, err := e.runInput(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "Ann" {
		t.Errorf("got %q, want \"Ann\"", res.StringValue)
	}
}

func TestRunInputEscapeReturnsNil(t *testing.T) {
	e := newTestEngine(t, "\x1b")
	p := NewInputPrompt("u", Plain("Name?"))

	res, err := e.runInput(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result on escape, got %+v", res)
	}
}

func TestRunInputCancelRaises(t *testing.T) {
	e := newTestEngine(t, "\x03")
	p := NewInputPrompt("u", Plain("Name?"))

	_, err := e.runInput(p, nil)
	if _, ok := err.(*UserCancelled); !ok {
		t.Errorf("got %v, want *UserCancelled", err)
	}
}

func TestRunInputValidatorBlocksCommit(t *testing.T) {
	// First Enter arrives on an empty buffer and is rejected by VRequired;
	// the executor keeps looping, the user types "ok", and the second Enter
	// commits.
	e := newTestEngine(t, "\rok\r")
	p := NewInputPrompt("u", Plain("Name?")).WithValidator(VRequired)

	res, err := e.runInput(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "ok" {
		t.Errorf("got %q, want \"ok\" after validator rejected the empty commit", res.StringValue)
	}
}

func TestRunListSelectsSecondItem(t *testing.T) {
	e := newTestEngine(t, "\x1b[B\r") // down, enter
	p := NewListPrompt("p", Plain("Pick:"),
		NewPromptItem("a", Plain("a")),
		NewPromptItem("b", Plain("b")),
		NewPromptItem("c", Plain("c")),
	)

	res, err := e.runList(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "b" {
		t.Errorf("got %q, want \"b\"", res.StringValue)
	}
}

func TestRunListSkipsDisabled(t *testing.T) {
	e := newTestEngine(t, "\x1b[B\r") // down, enter
	p := NewListPrompt("p", Plain("Pick:"),
		NewPromptItem("a", Plain("a")),
		NewPromptItem("b", Plain("b")).AsDisabled("unavailable"),
		NewPromptItem("c", Plain("c")),
	)

	res, err := e.runList(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "c" {
		t.Errorf("got %q, want \"c\" (b skipped as disabled)", res.StringValue)
	}
}

func TestRunListEmptyItemsCommitsImmediately(t *testing.T) {
	e := newTestEngine(t, "")
	p := NewListPrompt("p", Plain("Pick:"))

	res, err := e.runList(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "" {
		t.Errorf("expected empty selection for empty item list, got %q", res.StringValue)
	}
}

func TestRunCheckboxToggleTwoItems(t *testing.T) {
	e := newTestEngine(t, " \x1b[B \r") // space, down, space, enter
	p := NewCheckboxPrompt("c", Plain("Pick:"),
		NewPromptItem("x", Plain("x")),
		NewPromptItem("y", Plain("y")),
	)

	res, err := e.runCheckbox(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := res.AsSet()
	if _, ok := set["x"]; !ok {
		t.Error("expected x in result set")
	}
	if _, ok := set["y"]; !ok {
		t.Error("expected y in result set")
	}
	if len(set) != 2 {
		t.Errorf("expected 2 entries, got %d", len(set))
	}
}

func TestRunCheckboxInitiallyCheckedCanBeUntoggled(t *testing.T) {
	e := newTestEngine(t, " \r") // toggle cursor item off, enter
	p := NewCheckboxPrompt("c", Plain("Pick:"),
		NewPromptItem("x", Plain("x")).AsChecked(),
	)

	res, err := e.runCheckbox(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.AsSet()["x"]; ok {
		t.Error("expected x removed from set after toggle")
	}
}

func TestRunChoiceShortcutCommits(t *testing.T) {
	e := newTestEngine(t, "n")
	p := NewChoicePrompt("c", Plain("Confirm?"),
		NewPromptItem("yes", Plain("yes")).WithShortcut('y').AsDefault(),
		NewPromptItem("no", Plain("no")).WithShortcut('n'),
	)

	res, err := e.runChoice(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "no" {
		t.Errorf("got %q, want \"no\"", res.StringValue)
	}
}

func TestRunChoiceShortcutCommitEchoesChoice(t *testing.T) {
	// The committed frame must show the chosen shortcut, not a blank
	// "Choice: " line (§4.6, §9). The item rows already show "(q) beta",
	// so the check looks for 'q' only in what was written after the
	// "Choice:" label, which is where the echo lands.
	term := &terminal{fd: -1, caps: loadCapabilities()}
	var out bytes.Buffer
	e := &engine{
		term:    term,
		reader:  NewNonBlockingReader(strings.NewReader("q")),
		display: NewDisplay(&out),
		caps:    term.caps,
		cfg:     DefaultConfig(),
		log:     zap.NewNop(),
	}
	p := NewChoicePrompt("c", Plain("Pick one"),
		NewPromptItem("alpha", Plain("alpha")).WithShortcut('a').AsDefault(),
		NewPromptItem("beta", Plain("beta")).WithShortcut('q'),
	)

	if _, err := e.runChoice(p, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := bytes.LastIndex(out.Bytes(), []byte("Choice:"))
	if idx < 0 || !bytes.ContainsRune(out.Bytes()[idx:], 'q') {
		t.Errorf("expected committed frame to echo 'q' after the Choice label, got %q", out.String())
	}
}

func TestRunChoiceEnterCommitsDefault(t *testing.T) {
	e := newTestEngine(t, "\r")
	p := NewChoicePrompt("c", Plain("Confirm?"),
		NewPromptItem("yes", Plain("yes")).WithShortcut('y').AsDefault(),
		NewPromptItem("no", Plain("no")).WithShortcut('n'),
	)

	res, err := e.runChoice(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StringValue != "yes" {
		t.Errorf("got %q, want \"yes\" (default)", res.StringValue)
	}
}

func TestRunConfirmTypedNo(t *testing.T) {
	e := newTestEngine(t, "n")
	p := NewConfirmPrompt("ok", Plain("Proceed?"), true)

	res, err := e.runConfirm(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BoolValue {
		t.Error("expected false for typed 'n'")
	}
}

func TestRunConfirmEnterCommitsDefault(t *testing.T) {
	e := newTestEngine(t, "\r")
	p := NewConfirmPrompt("ok", Plain("Proceed?"), true)

	res, err := e.runConfirm(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.BoolValue {
		t.Error("expected true (the configured default) on bare Enter")
	}
}

func TestRunTextCommitsImmediately(t *testing.T) {
	e := newTestEngine(t, "")
	p := NewTextPrompt("done", Plain(""), Plain("All set."))

	res, err := e.runText(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != ResultText {
		t.Errorf("got kind %v, want ResultText", res.Kind)
	}
}
