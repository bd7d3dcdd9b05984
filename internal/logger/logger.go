package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/snowflake.txt"

// maxLines bounds the in-memory history shown by the HUD.
const maxLines = 64

// Logger writes structured records through log/slog to an optional file and extra writer,
// and keeps the most recent formatted lines in memory so they can be drawn on screen.
type Logger struct {
	slog  *slog.Logger
	file  *os.File
	mu    sync.Mutex
	lines []string
}

// Options configures New. Zero value logs at info level to nothing but the in-memory history.
type Options struct {
	Path  string     // log file, appended to; empty disables the file sink
	Echo  io.Writer  // optional extra sink, e.g. os.Stderr
	Level slog.Level // minimum level
}

// New returns a Logger. If the log file cannot be opened the file sink is skipped.
func New(opts Options) *Logger {
	l := &Logger{lines: make([]string, 0, maxLines)}
	sinks := []io.Writer{recorder{l}}
	if opts.Path != "" {
		_ = os.MkdirAll(filepath.Dir(opts.Path), 0755)
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			l.file = f
			sinks = append(sinks, fileSink{l})
		}
	}
	if opts.Echo != nil {
		sinks = append(sinks, opts.Echo)
	}
	h := slog.NewTextHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{Level: opts.Level})
	l.slog = slog.New(h)
	return l
}

// Discard returns a Logger that only keeps in-memory lines. Used by tests and headless tools.
func Discard() *Logger {
	return New(Options{Level: slog.LevelDebug})
}

// Slog returns the underlying slog.Logger, for libraries that accept one.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the most recent line, or "" when nothing was logged.
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

// Close closes the log file, if any. Records logged afterwards still reach the other sinks.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, line)
}

// fileSink writes to the log file until Close and drops records after it.
type fileSink struct{ l *Logger }

func (s fileSink) Write(p []byte) (int, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	if s.l.file == nil {
		return len(p), nil
	}
	return s.l.file.Write(p)
}

// recorder is the io.Writer side of the in-memory history. slog handlers write one record per call.
type recorder struct{ l *Logger }

func (r recorder) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(bytes.TrimRight(p, "\n")), "\n") {
		if line != "" {
			r.l.append(line)
		}
	}
	return len(p), nil
}
