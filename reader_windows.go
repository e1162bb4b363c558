//go:build windows

package prompter

import (
	"io"
	"sync"

	"github.com/erikgeiser/coninput"
	"golang.org/x/sys/windows"
)

// consoleReader adapts ReadConsoleInput key events to the same io.Reader
// contract NonBlockingReader expects on unix (a stream of raw bytes),
// translating non-printable keys to the xterm escape sequences capabilities
// already knows how to bind (arrows, Home/End), so KeyMap bindings built
// from terminfo capabilities work unchanged on Windows consoles.
type consoleReader struct {
	handle windows.Handle

	mu  sync.Mutex
	buf []byte
}

// newPlatformReader opens the process's console input handle for raw
// key-event reads, used by newEngine in place of os.Stdin on Windows.
func newPlatformReader() io.Reader {
	return &consoleReader{handle: windows.Handle(windows.Stdin)}
}

func (c *consoleReader) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.buf) == 0 {
		var records [8]coninput.InputRecord
		n, err := coninput.ReadConsoleInput(c.handle, records[:])
		if err != nil {
			return 0, err
		}
		for i := uint32(0); i < n; i++ {
			c.buf = append(c.buf, encodeKeyEvent(records[i])...)
		}
	}

	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

// encodeKeyEvent converts one console key-down event into the byte sequence
// an equivalent xterm keypress would have produced, or nil for events this
// prompter ignores (key-up, mouse, focus, buffer resize).
func encodeKeyEvent(r coninput.InputRecord) []byte {
	if r.EventType != coninput.KeyEventType {
		return nil
	}
	key := r.KeyEvent()
	if key.KeyDown == 0 {
		return nil
	}

	switch key.VirtualKeyCode {
	case coninput.VK_UP:
		return []byte("\x1b[A")
	case coninput.VK_DOWN:
		return []byte("\x1b[B")
	case coninput.VK_RIGHT:
		return []byte("\x1b[C")
	case coninput.VK_LEFT:
		return []byte("\x1b[D")
	case coninput.VK_HOME:
		return []byte("\x1b[H")
	case coninput.VK_END:
		return []byte("\x1b[F")
	case coninput.VK_DELETE:
		return []byte("\x1b[3~")
	case coninput.VK_RETURN:
		return []byte{'\r'}
	case coninput.VK_BACK:
		return []byte{127}
	case coninput.VK_TAB:
		return []byte{9}
	case coninput.VK_ESCAPE:
		return []byte{27}
	}

	if key.UnicodeChar == 0 {
		return nil
	}
	return []byte(string(rune(key.UnicodeChar)))
}
