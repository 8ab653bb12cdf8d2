package glint

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is a file-backed diagnostic sink for code that cannot write to
// the terminal (stdout is the UI). It is an explicitly constructed,
// owned value passed to the components that need it; there is no global
// logger. A nil *Logger is valid and discards everything.
type Logger struct {
	file *os.File
	sl   *slog.Logger
}

// NewLogger creates (or truncates) the log file at path.
func NewLogger(path string) (*Logger, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	return &Logger{
		file: file,
		sl:   slog.New(slog.NewTextHandler(file, nil)),
	}, nil
}

// Log writes a diagnostic message. Safe on a nil receiver.
func (l *Logger) Log(msg string) {
	if l == nil {
		return
	}
	l.sl.Info(msg)
}

// Logf writes a formatted diagnostic message. Safe on a nil receiver.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.sl.Info(fmt.Sprintf(format, args...))
}

// Error writes a diagnostic message with an attached error.
// Safe on a nil receiver.
func (l *Logger) Error(msg string, err error) {
	if l == nil {
		return
	}
	l.sl.Error(msg, "err", err)
}

// Close flushes and closes the log file. Safe on a nil receiver.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
