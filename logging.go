package prompter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogEnvVar names the env var that, when set to a writable path,
// switches on structured debug logging of engine lifecycle events. Unset,
// the engine is silent.
const DebugLogEnvVar = "PROMPTER_DEBUG_LOG"

// newDebugLogger opens a file-sinked zap.Logger from PROMPTER_DEBUG_LOG, or
// a no-op logger when the variable is unset. It is never sinked to
// stdout/stderr: the renderer owns both of those for the live frame, and
// interleaving log lines with cell-diff escape sequences would corrupt the
// display.
func newDebugLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// logRawMode records entering or exiting raw mode.
func logRawMode(l *zap.Logger, entering bool) {
	if entering {
		l.Debug("raw mode entered")
	} else {
		l.Debug("raw mode exited")
	}
}

// logCommit records a prompt reaching commit.
func logCommit(l *zap.Logger, name string, kind PromptKind) {
	l.Debug("prompt committed", zap.String("name", name), zap.String("kind", kind.String()))
}

// logBack records a prompt returning the back-sentinel.
func logBack(l *zap.Logger, name string) {
	l.Debug("prompt back-navigated", zap.String("name", name))
}

// logCancel records the user raising the cancellation token.
func logCancel(l *zap.Logger, name string) {
	l.Debug("run cancelled", zap.String("at_prompt", name))
}

// logHeaderMutation records the flow controller appending or popping a
// header line along with its result-map key.
func logHeaderMutation(l *zap.Logger, action, name string) {
	l.Debug("header mutated", zap.String("action", action), zap.String("name", name))
}
