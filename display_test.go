package prompter

import (
	"bytes"
	"testing"
)

func newTestDisplay() (*Display, *bytes.Buffer) {
	var out bytes.Buffer
	d := &Display{out: &out, caps: loadCapabilities()}
	return d, &out
}

func TestDisplayRenderIsIdempotent(t *testing.T) {
	d, out := newTestDisplay()
	lines := []AttributedString{Plain("hello"), Plain("world")}
	size := Size{Rows: 24, Cols: 80}

	d.Render(lines, 0, 0, size)
	out.Reset()

	d.Render(lines, 0, 0, size)
	if out.Len() != 0 {
		t.Errorf("expected no writes on repeated identical frame, got %d bytes: %q", out.Len(), out.String())
	}
}

func TestDisplayRenderClearsShrunkRow(t *testing.T) {
	d, out := newTestDisplay()
	size := Size{Rows: 24, Cols: 80}

	d.Render([]AttributedString{Plain("hello world")}, 0, 0, size)
	out.Reset()

	d.Render([]AttributedString{Plain("hi")}, 0, 0, size)
	if !bytes.Contains(out.Bytes(), []byte(d.caps.clrEol)) {
		t.Error("expected a clear-to-EOL sequence when a row's content shrinks")
	}
}

func TestDisplayRenderFullRedrawOnResize(t *testing.T) {
	d, out := newTestDisplay()
	d.Render([]AttributedString{Plain("x")}, 0, 0, Size{Rows: 24, Cols: 80})
	out.Reset()

	d.Render([]AttributedString{Plain("x")}, 0, 0, Size{Rows: 30, Cols: 100})
	if out.Len() == 0 {
		t.Error("expected a full redraw to emit writes after a terminal-size change")
	}
}
