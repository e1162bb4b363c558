package prompter

import (
	"os"

	"go.uber.org/zap"
)

// Operation is the abstract token a KeyMap resolves a raw input sequence
// to. One enum is shared across every executor family; each executor binds
// only the subset of operations it actually interprets.
type Operation int

const (
	OpNone Operation = iota // nomatch: input ignored, loop continues
	OpInsert                // printable rune; see BindingReader.LastRune()
	OpBackspace
	OpDelete
	OpLeft
	OpRight
	OpUp
	OpDown
	OpBeginningOfLine
	OpEndOfLine
	OpSelectCandidate
	OpExit
	OpCancel
	OpEscape
	OpForwardLine
	OpBackwardLine
	OpForwardColumn
	OpBackwardColumn
	OpToggle
)

// ctrlRune builds the single-byte binding string for Ctrl+letter, where
// letter 'a'..'z' maps to byte 1..26 (Ctrl+C == 3, the cancellation key).
func ctrlRune(n int) string { return string(rune(n)) }

const (
	cancelKey = 3  // Ctrl+C
	enterCR   = 13 // '\r'
	enterLF   = 10 // '\n'
	tabKey    = 9
	backspace = 127
	ctrlH     = 8
	escKey    = 27
	deleteSeq = "\x1b[3~" // xterm CSI fallback; not in capabilities (no terminfo kdch1 lookup wired)
)

// defaultInputKeyMap binds the Input executor's operations (§4.3).
func defaultInputKeyMap(caps capabilities) *KeyMap[Operation] {
	km := NewKeyMap[Operation]()
	km.Bind(ctrlRune(enterCR), OpExit)
	km.Bind(ctrlRune(enterLF), OpExit)
	km.Bind(ctrlRune(backspace), OpBackspace)
	km.Bind(ctrlRune(ctrlH), OpBackspace)
	km.Bind(ctrlRune(tabKey), OpSelectCandidate)
	km.Bind(ctrlRune(cancelKey), OpCancel)
	km.Bind(deleteSeq, OpDelete)
	km.Bind(caps.keyLeft, OpLeft)
	km.Bind(caps.keyRight, OpRight)
	km.Bind(caps.keyUp, OpUp)
	km.Bind(caps.keyDown, OpDown)
	km.Bind(caps.keyHome, OpBeginningOfLine)
	km.Bind(caps.keyEnd, OpEndOfLine)
	km.Bind(ctrlRune(escKey), OpEscape)
	km.Unicode(OpInsert)
	return km
}

// defaultGridKeyMap binds the List/Checkbox shared navigation operations
// (§4.4, §4.5). Column bindings are always registered; gridNav.stepColumn
// itself is a no-op when columns == 1, which is what the spec's "bound
// only when columns > 1" rule amounts to in practice. The xterm CSI arrow
// sequences are bound alongside the terminfo ones, since terminals send
// those when not in application keypad mode.
func defaultGridKeyMap(caps capabilities) *KeyMap[Operation] {
	km := NewKeyMap[Operation]()
	km.Bind(ctrlRune(enterCR), OpExit)
	km.Bind(ctrlRune(enterLF), OpExit)
	km.Bind(ctrlRune(cancelKey), OpCancel)
	km.Bind(ctrlRune(escKey), OpEscape)
	km.Bind(xtermFallback.keyDown, OpForwardLine)
	km.Bind(xtermFallback.keyUp, OpBackwardLine)
	km.Bind(xtermFallback.keyRight, OpForwardColumn)
	km.Bind(xtermFallback.keyLeft, OpBackwardColumn)
	km.Bind(caps.keyDown, OpForwardLine)
	km.Bind(caps.keyUp, OpBackwardLine)
	km.Bind(caps.keyRight, OpForwardColumn)
	km.Bind(caps.keyLeft, OpBackwardColumn)
	km.Bind(" ", OpToggle)
	km.Unicode(OpInsert)
	return km
}

// defaultChoiceKeyMap binds the Choice/Confirm executors' operations
// (§4.6): a single printable character, Enter, Escape, Cancel.
func defaultChoiceKeyMap() *KeyMap[Operation] {
	km := NewKeyMap[Operation]()
	km.Bind(ctrlRune(enterCR), OpExit)
	km.Bind(ctrlRune(enterLF), OpExit)
	km.Bind(ctrlRune(cancelKey), OpCancel)
	km.Bind(ctrlRune(escKey), OpEscape)
	km.Unicode(OpInsert)
	return km
}

// engine bundles the collaborators an executor needs: raw input, the
// differential renderer, resolved capabilities/config, and the (usually
// no-op) debug sink. One engine drives an entire flow run.
type engine struct {
	term    *terminal
	reader  *NonBlockingReader
	display *Display
	caps    capabilities
	cfg     Config
	log     *zap.Logger
}

// newEngine wires stdin/stdout as the TTY, resolving config from
// DefaultConfig and the debug logger from PROMPTER_DEBUG_LOG.
func newEngine() *engine {
	term := newTerminal(os.Stdin, os.Stdout)
	return &engine{
		term:    term,
		reader:  NewNonBlockingReader(newPlatformReader()),
		display: NewDisplay(os.Stdout),
		caps:    term.caps,
		cfg:     DefaultConfig(),
		log:     newDebugLogger(os.Getenv(DebugLogEnvVar)),
	}
}

// close releases the non-blocking reader's pump goroutine and flushes the
// debug log. It does not restore terminal state; callers use term.ExitRaw
// for that via the flow controller's guaranteed teardown path.
func (e *engine) close() {
	e.reader.Shutdown()
	_ = e.log.Sync()
}

// frameLines concatenates the shared header with a prompt's own body lines
// into the full frame passed to the differential renderer.
func frameLines(header []AttributedString, body ...AttributedString) []AttributedString {
	out := make([]AttributedString, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	return out
}

// renderError formats a validator/runtime error as the one-line message
// rendered below a prompt (§7: "caught and reported inline").
func renderError(resolver StyleResolver, err error) AttributedString {
	return NewAttributedString(err.Error(), resolver.Disabled.Bold())
}
