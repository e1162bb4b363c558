//go:build !windows

package prompter

import (
	"io"
	"os"

	"github.com/mattn/go-localereader"
)

// newPlatformReader wraps stdin with localereader so bytes in the process
// locale's native encoding (common on older non-UTF-8 Linux/BSD setups) are
// normalized to UTF-8 before NonBlockingReader's incremental decoder ever
// sees them; on a UTF-8 locale it is a passthrough. Raw mode (termios.go)
// already puts stdin into the unbuffered, non-canonical state the reader
// needs.
func newPlatformReader() io.Reader {
	return localereader.NewReader(os.Stdin)
}
