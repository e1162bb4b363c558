package prompter

import "fmt"

// IOError wraps a failure from the underlying terminal read/write/ioctl
// layer (size query, raw-mode toggle, non-blocking reader pump).
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("prompter: io error during %s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// UsageError signals a caller mistake. The engine returns it for a prompt
// whose Kind is not one of the six variants; re-entering a running engine
// and nil prompts or providers are not detected and do not produce it.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prompter: usage error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("prompter: usage error: %s", e.Msg)
}
func (e *UsageError) Unwrap() error { return e.Err }

// UserCancelled is raised when the user presses the cancellation key
// (distinct from Escape's local back-navigation) and propagates through the
// executor and flow controller to the caller after terminal restore.
type UserCancelled struct {
	Err error
}

func (e *UserCancelled) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prompter: cancelled: %v", e.Err)
	}
	return "prompter: cancelled by user"
}
func (e *UserCancelled) Unwrap() error { return e.Err }

// InvalidInput describes a malformed-input condition. No code path in this
// package returns it: NonBlockingReader decodes malformed bytes to
// utf8.RuneError, and validator errors are rendered inline below the prompt.
type InvalidInput struct {
	Msg string
	Err error
}

func (e *InvalidInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prompter: invalid input: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("prompter: invalid input: %s", e.Msg)
}
func (e *InvalidInput) Unwrap() error { return e.Err }
