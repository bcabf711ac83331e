// Package testutil provides logging helpers for tests.
package testutil

import (
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a debug level logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Records collects the text of every record written by a recording
// logger. It is safe for concurrent use.
type Records struct {
	mu    sync.Mutex
	lines []string
}

// Lines returns the records written so far.
func (r *Records) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Contains reports whether any record contains all of the given parts.
func (r *Records) Contains(parts ...string) bool {
	for _, line := range r.Lines() {
		ok := true
		for _, p := range parts {
			if !strings.Contains(line, p) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// NewRecordingLogger is NewTestLogger that also keeps every record for
// assertions.
func NewRecordingLogger(t testing.TB) (*slog.Logger, *Records) {
	t.Helper()
	rec := &Records{}
	logger := slog.New(slog.NewTextHandler(testWriter{t: t, rec: rec}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, rec
}

type testWriter struct {
	t   testing.TB
	rec *Records
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	line := strings.TrimSuffix(string(p), "\n")
	if w.rec != nil {
		w.rec.mu.Lock()
		w.rec.lines = append(w.rec.lines, line)
		w.rec.mu.Unlock()
	}
	w.t.Log(line)
	return len(p), nil
}
