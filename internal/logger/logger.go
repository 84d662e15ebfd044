package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin chained wrapper around slog. Scope is set once per
// package/struct via New, then narrowed per call with Function or File. The
// Err/Error variants both log and return an error so call sites can do
// `return log.Err("...", err)` in one line.
type Logger struct {
	scope    string
	file     string
	function string
	logger   *slog.Logger
}

func New(scope string) Logger {
	return Logger{
		scope:  scope,
		logger: slog.Default(),
	}
}

// Init installs the process-wide slog handler. Called once from main.
func Init(level string) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}

func (l Logger) Function(name string) Logger {
	l.function = name
	return l
}

func (l Logger) File(name string) Logger {
	l.file = name
	return l
}

func (l Logger) args(args ...any) []any {
	out := make([]any, 0, len(args)+6)
	if l.scope != "" {
		out = append(out, "scope", l.scope)
	}
	if l.file != "" {
		out = append(out, "file", l.file)
	}
	if l.function != "" {
		out = append(out, "function", l.function)
	}
	return append(out, args...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, l.args(args...)...)
}

func (l Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.args(args...)...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, l.args(args...)...)
}

// Error logs at error level and returns a new error with the message.
func (l Logger) Error(msg string, args ...any) error {
	l.logger.Error(msg, l.args(args...)...)
	return fmt.Errorf("%s", msg)
}

// Err logs the underlying error at error level and returns it wrapped with
// the message for the caller to propagate.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.logger.Error(msg, l.args(append(args, "error", err)...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Er logs an error without returning it, for paths that swallow the failure.
func (l Logger) Er(msg string, err error, args ...any) {
	l.logger.Error(msg, l.args(append(args, "error", err)...)...)
}

// ErMsg logs an error-level message without an underlying error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.logger.Error(msg, l.args(args...)...)
}

// ErrMsg logs an error-level message and returns it as an error.
func (l Logger) ErrMsg(msg string, args ...any) error {
	l.logger.Error(msg, l.args(args...)...)
	return fmt.Errorf("%s", msg)
}
