package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
// The zero value and a nil *Logger are disabled loggers.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
}

// New returns an enabled logger writing to w. If w is also an io.Closer it
// is closed by Close.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// NewFromEnv returns a logger if MODEDIT_LOG is set to a truthy value
// or if MODEDIT_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./modedit.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("MODEDIT_LOG_FILE")
	enabled := lf != ""
	if v := os.Getenv("MODEDIT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", "modedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// The terminal is owned by the editor, so there is nowhere to
		// report this; logging is simply off.
		return &Logger{}
	}
	return New(f)
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes and closes the underlying writer if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, mode, op, row, col.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
