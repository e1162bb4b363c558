package prompter

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// terminal wraps raw-mode entry/exit and size queries over the process's
// controlling TTY, using golang.org/x/term so the same code path works on
// both unix and Windows consoles (the teacher's own termios_darwin.go
// hand-rolls unix ioctls directly; x/term already covers both platforms).
type terminal struct {
	fd   int
	in   *os.File
	out  *os.File
	caps capabilities

	mu        sync.Mutex
	prevState *term.State
	inRaw     bool

	resizeCh chan Size
	sigCh    chan os.Signal
	stopCh   chan struct{}
}

func newTerminal(in, out *os.File) *terminal {
	return &terminal{
		fd:       int(in.Fd()),
		in:       in,
		out:      out,
		caps:     loadCapabilities(),
		resizeCh: make(chan Size, 1),
	}
}

// Size queries the terminal's current dimensions from the input fd,
// falling back to 80x24 when the query fails (e.g. stdin is not a terminal,
// as in tests).
func (t *terminal) Size() Size {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return Size{Rows: 24, Cols: 80}
	}
	return Size{Rows: rows, Cols: cols}
}

// EnterRaw puts the TTY into raw mode, enables application keypad transmit,
// and starts watching for SIGWINCH so callers can react to live resizes.
// Re-entry is a no-op, matching the engine's "enter exactly once" contract.
func (t *terminal) EnterRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inRaw {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return &IOError{Op: "enter raw mode", Err: err}
	}
	t.prevState = state
	t.inRaw = true

	t.caps.enableKeypadTransmit(t.out)

	t.sigCh = make(chan os.Signal, 1)
	t.stopCh = make(chan struct{})
	signal.Notify(t.sigCh, syscall.SIGWINCH)
	go t.watchResize()

	return nil
}

// ExitRaw restores the terminal's prior attributes. Safe to call more than
// once, and safe to call when EnterRaw was never successfully called.
func (t *terminal) ExitRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.inRaw {
		return nil
	}
	t.caps.disableKeypadTransmit(t.out)

	if t.sigCh != nil {
		signal.Stop(t.sigCh)
		close(t.stopCh)
	}

	err := term.Restore(t.fd, t.prevState)
	t.inRaw = false
	if err != nil {
		return &IOError{Op: "restore terminal state", Err: err}
	}
	return nil
}

func (t *terminal) watchResize() {
	for {
		select {
		case <-t.sigCh:
			select {
			case t.resizeCh <- t.Size():
			default:
			}
		case <-t.stopCh:
			return
		}
	}
}

// ResizeChan delivers a new Size whenever SIGWINCH fires, best-effort
// (a pending unread resize is overwritten by the next one).
func (t *terminal) ResizeChan() <-chan Size { return t.resizeCh }

func (t *terminal) String() string {
	return fmt.Sprintf("terminal{fd=%d, raw=%v}", t.fd, t.inRaw)
}
