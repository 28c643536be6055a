// Package logging provides the leveled console logger used across the
// conversion pipeline, with optional ANSI color and an optional file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	red    = "\033[1;91m"
	green  = "\033[1;92m"
	yellow = "\033[1;93m"
	blue   = "\033[1;94m"
	cyan   = "\033[1;96m"
	reset  = "\033[0m"
)

// Options controls logger construction.
type Options struct {
	Color   bool   // enable ANSI colors
	Verbose bool   // emit Debug lines
	File    string // optional path to append plain-text logs to
}

// Logger writes one line per event to stdout (stderr for errors) and,
// when configured, to an append-only log file. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	color   bool
	verbose bool
	file    *os.File
}

// New builds a Logger from opts. When opts.File is set the file (and its
// parent directory) is created; call Close when done.
func New(opts Options) (*Logger, error) {
	l := &Logger{color: opts.Color, verbose: opts.Verbose}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// ColorEnabled reports whether stdout wants ANSI output: a TTY, no NO_COLOR
// in the environment, and not a dumb terminal.
func ColorEnabled() bool {
	fi, err := os.Stdout.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	return os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// Close closes the file sink if one was opened.
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

func (l *Logger) line(level, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if l.color {
		fmt.Fprintf(out, "%s[%s]%s %s\n", color, level, reset, text)
	} else {
		fmt.Fprintf(out, "[%s] %s\n", level, text)
	}
	if l.file != nil {
		ts := time.Now().Format("2006-01-02 15:04:05")
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs a progress line.
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", blue, fmt.Sprintf(format, args...))
}

// OK logs a per-file success line.
func (l *Logger) OK(format string, args ...any) {
	l.line("OK", green, fmt.Sprintf(format, args...))
}

// Warn logs a benign skip (missing path, non-input file).
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", yellow, fmt.Sprintf(format, args...))
}

// Error logs a conversion failure; also mirrored to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", red, fmt.Sprintf(format, args...))
}

// Debug logs only when verbose was requested.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", cyan, fmt.Sprintf(format, args...))
}
