package prompter

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestNonBlockingReaderBasicRead(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("ab"))
	defer r.Shutdown()

	if got := r.Read(1000); got != 'a' {
		t.Errorf("got %q, want 'a'", got)
	}
	if got := r.Read(1000); got != 'b' {
		t.Errorf("got %q, want 'b'", got)
	}
	if got := r.Read(1000); got != EOF {
		t.Errorf("got %v, want EOF", got)
	}
}

func TestNonBlockingReaderMultibyteRune(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("é"))
	defer r.Shutdown()

	if got := r.Read(1000); got != 'é' {
		t.Errorf("got %q, want 'é'", got)
	}
}

func TestNonBlockingReaderPeekDoesNotConsume(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("x"))
	defer r.Shutdown()

	if got := r.Peek(1000); got != 'x' {
		t.Errorf("Peek got %q, want 'x'", got)
	}
	if got := r.Read(1000); got != 'x' {
		t.Errorf("Read after Peek got %q, want 'x'", got)
	}
}

func TestNonBlockingReaderAvailable(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("y"))
	defer r.Shutdown()

	deadline := 0
	for !r.Available() && deadline < 1000 {
		deadline++
		time.Sleep(time.Millisecond)
	}
	if !r.Available() {
		t.Fatal("expected data to become available")
	}
	if got := r.Read(0); got != 'y' {
		t.Errorf("got %q, want 'y'", got)
	}
}

func TestNonBlockingReaderTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewNonBlockingReader(pr)
	defer r.Shutdown()

	if got := r.Read(10); got != TIMEOUT {
		t.Errorf("got %v, want TIMEOUT", got)
	}
}
