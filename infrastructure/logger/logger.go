package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string, args ...any)
	Warning(msg string, args ...any)
	Error(msg string, err error, args ...any)
	Close()
}

type jsonLogger struct {
	mu     sync.Mutex
	closer io.Closer
	slog   *slog.Logger
}

// NewFileLogger writes one JSON object per line to
// <logDir>/<logPrefix>_<timestamp>.json. The terminal stays free for the TUI.
func NewFileLogger(logDir, logPrefix string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := fmt.Sprintf("%s_%s.json", logPrefix, timestamp)
	logFilePath := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	l := NewWriterLogger(file).(*jsonLogger)
	l.closer = file
	return l, nil
}

// NewWriterLogger logs JSON lines to w. Close does not close w.
func NewWriterLogger(w io.Writer) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	return &jsonLogger{slog: slog.New(handler)}
}

func (l *jsonLogger) write(level slog.Level, msg string, errIn error, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slog == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping entry: %s\n", msg)
		return
	}

	shortFileName, funcName := caller(3)
	attrs := []any{
		slog.String("file", shortFileName),
		slog.String("function", funcName),
	}
	if errIn != nil {
		attrs = append(attrs, slog.String("err", errIn.Error()))
	}
	attrs = append(attrs, args...)

	l.slog.Log(context.Background(), level, msg, attrs...)
}

func caller(skip int) (string, string) {
	pc, filePath, _, ok := runtime.Caller(skip)
	if !ok {
		return "???", "???"
	}

	funcName := "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		parts := strings.Split(fn.Name(), ".")
		funcName = parts[len(parts)-1]
	}
	return filepath.Base(filePath), funcName
}

func (l *jsonLogger) Info(msg string, args ...any) {
	l.write(slog.LevelInfo, msg, nil, args)
}

func (l *jsonLogger) Warning(msg string, args ...any) {
	l.write(slog.LevelWarn, msg, nil, args)
}

func (l *jsonLogger) Error(msg string, err error, args ...any) {
	l.write(slog.LevelError, msg, err, args)
}

func (l *jsonLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		l.closer = nil
	}
	l.slog = nil
}
