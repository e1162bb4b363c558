package prompter

import (
	"os"

	"github.com/xo/terminfo"
)

// capabilities bundles the terminfo string capabilities the renderer and key
// map need: relative cursor motion, clear-to-EOL/EOS, keypad transmit/local
// mode, and the escape sequences the navigation keys send. It falls back to
// the common xterm CSI sequences when no terminfo database entry can be
// loaded (minimal containers, TERM=dumb, ...) per SPEC_FULL §4.11 — the
// engine must still function without one. The renderer only ever needs
// relative motion (cursor up/down/forward N) because prompts render inline,
// never in the alternate screen, so there is no stable absolute origin to
// address against.
type capabilities struct {
	ti *terminfo.Terminfo

	clrEol      string
	clrEos      string
	keypadXmit  string
	keypadLocal string

	cursorUpFmt, cursorDownFmt, cursorForwardFmt string // fallback printf-style "\x1b[%dX" templates

	keyUp, keyDown, keyLeft, keyRight string
	keyHome, keyEnd                  string
}

var xtermFallback = capabilities{
	clrEol:          "\x1b[K",
	clrEos:          "\x1b[J",
	keypadXmit:      "\x1b[?1h\x1b=",
	keypadLocal:     "\x1b[?1l\x1b>",
	cursorUpFmt:      "\x1b[%dA",
	cursorDownFmt:    "\x1b[%dB",
	cursorForwardFmt: "\x1b[%dC",
	keyUp:    "\x1b[A",
	keyDown:  "\x1b[B",
	keyLeft:  "\x1b[D",
	keyRight: "\x1b[C",
	keyHome:  "\x1b[H",
	keyEnd:   "\x1b[F",
}

// loadCapabilities resolves capabilities from the TERM-named terminfo entry,
// falling back field-by-field to xtermFallback for anything missing.
func loadCapabilities() capabilities {
	caps := xtermFallback
	ti, err := terminfo.LoadFromEnv()
	if err != nil || ti == nil {
		return caps
	}
	caps.ti = ti

	if s, ok := capString(ti, terminfo.ClrEol); ok {
		caps.clrEol = s
	}
	if s, ok := capString(ti, terminfo.ClrEos); ok {
		caps.clrEos = s
	}
	if s, ok := capString(ti, terminfo.KeypadXmit); ok {
		caps.keypadXmit = s
	}
	if s, ok := capString(ti, terminfo.KeypadLocal); ok {
		caps.keypadLocal = s
	}
	if s, ok := capString(ti, terminfo.KeyUp); ok {
		caps.keyUp = s
	}
	if s, ok := capString(ti, terminfo.KeyDown); ok {
		caps.keyDown = s
	}
	if s, ok := capString(ti, terminfo.KeyLeft); ok {
		caps.keyLeft = s
	}
	if s, ok := capString(ti, terminfo.KeyRight); ok {
		caps.keyRight = s
	}
	if s, ok := capString(ti, terminfo.KeyHome); ok {
		caps.keyHome = s
	}
	if s, ok := capString(ti, terminfo.KeyEnd); ok {
		caps.keyEnd = s
	}
	return caps
}

// capString safely renders a non-parameterized terminfo string capability,
// recovering from a panic on an unsupported/absent capability index rather
// than crashing the engine — terminfo entries vary widely across platforms.
func capString(ti *terminfo.Terminfo, cap int) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	out := ti.Printf(cap)
	if out == "" {
		return "", false
	}
	return out, true
}

func capParam(ti *terminfo.Terminfo, cap int, n int) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	out := ti.Printf(cap, n)
	if out == "" {
		return "", false
	}
	return out, true
}

// moveUp/moveDown/moveForward render the escape sequence to move the cursor
// by n cells (n == 0 yields no output), preferring the parameterized
// terminfo capability over the xterm fallback template.
func (c capabilities) moveUp(n int) string {
	if n <= 0 {
		return ""
	}
	if c.ti != nil {
		if s, ok := capParam(c.ti, terminfo.ParmUpCursor, n); ok {
			return s
		}
	}
	return sprintfN(c.cursorUpFmt, n)
}

func (c capabilities) moveDown(n int) string {
	if n <= 0 {
		return ""
	}
	if c.ti != nil {
		if s, ok := capParam(c.ti, terminfo.ParmDownCursor, n); ok {
			return s
		}
	}
	return sprintfN(c.cursorDownFmt, n)
}

func (c capabilities) moveForward(n int) string {
	if n <= 0 {
		return ""
	}
	if c.ti != nil {
		if s, ok := capParam(c.ti, terminfo.ParmRightCursor, n); ok {
			return s
		}
	}
	return sprintfN(c.cursorForwardFmt, n)
}

// sprintfN substitutes a single %d in a fallback template without format
// parsing overhead on the render hot path.
func sprintfN(tmpl string, n int) string {
	i := indexByte(tmpl, '%')
	if i < 0 || i+1 >= len(tmpl) || tmpl[i+1] != 'd' {
		return tmpl
	}
	return tmpl[:i] + itoa(n) + tmpl[i+2:]
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// enableKeypadTransmit/disableKeypadTransmit toggle application keypad mode,
// which makes arrow/function keys send consistent escape sequences instead
// of the numeric-keypad variants some terminals default to.
func (c capabilities) enableKeypadTransmit(w *os.File) {
	w.WriteString(c.keypadXmit)
}

func (c capabilities) disableKeypadTransmit(w *os.File) {
	w.WriteString(c.keypadLocal)
}
