package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the viewer log file, relative to the working directory (project root when run via go run ./cmd/lattice).
const LogFilePath = "logs/viewer.log"

// maxLines caps the in-memory history shown by the terminal overlay.
const maxLines = 500

// Logger keeps recent lines in memory for the terminal overlay and writes every entry as JSON to a log file through zap.
type Logger struct {
	mu    sync.Mutex
	lines []string
	zl    *zap.Logger
	close func() error
}

// New returns a Logger writing to LogFilePath. If the file cannot be opened, entries are kept in memory only.
func New() *Logger {
	l, err := Open(LogFilePath)
	if err != nil {
		return NewWithZap(zap.NewNop())
	}
	return l
}

// Open returns a Logger appending JSON entries to path, creating its directory if needed.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zap.DebugLevel)
	l := NewWithZap(zap.New(core))
	l.close = f.Close
	return l, nil
}

// NewWithZap returns a Logger that forwards entries to zl (use zap.NewNop() in tests).
func NewWithZap(zl *zap.Logger) *Logger {
	return &Logger{lines: make([]string, 0), zl: zl}
}

// Zap returns the underlying structured logger for callers that want fields.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Log appends a line prefixed with [timestamp] and writes it to the log file.
func (l *Logger) Log(line string) {
	l.remember(line)
	l.zl.Info(line)
}

func (l *Logger) remember(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Error logs err with a short context message.
func (l *Logger) Error(msg string, err error) {
	l.remember(msg + ": " + err.Error())
	l.zl.Error(msg, zap.Error(err))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.close != nil {
		return l.close()
	}
	return nil
}
