// Package debuglog writes structured JSON-lines debug entries to a file.
// Logging is a no-op until Init is called with enabled set.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "weekgrid-debug.log"

// Logger writes one JSON object per line.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	seq    int
	now    func() time.Time
}

var (
	stdMu sync.RWMutex
	std   *Logger
)

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Init opens path and installs it as the package logger. When enabled is
// false the package logger is cleared and nothing is written.
func Init(enabled bool, path string) error {
	if !enabled {
		SetDefault(nil)
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	l := New(f)
	l.closer = f
	SetDefault(l)

	l.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     l.now().Format(time.RFC3339),
	})
	return nil
}

// SetDefault installs l as the package logger. nil disables logging.
func SetDefault(l *Logger) {
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

func current() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// Enabled reports whether a package logger is installed.
func Enabled() bool {
	return current() != nil
}

// Close writes the end marker and closes the package logger's file.
func Close() {
	l := current()
	if l == nil {
		return
	}
	l.Log("DEBUG_END", map[string]any{
		"time": l.now().Format(time.RFC3339),
	})
	if l.closer != nil {
		_ = l.closer.Close()
	}
	SetDefault(nil)
}

// Log writes a structured entry with the package logger.
func Log(event string, data map[string]any) {
	current().Log(event, data)
}

// Error logs err under context.
func Error(context string, err error) {
	if err == nil {
		return
	}
	Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// Log writes a structured log entry. A nil logger discards it.
func (l *Logger) Log(event string, data map[string]any) {
	if l == nil || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}
