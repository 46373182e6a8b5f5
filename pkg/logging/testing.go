package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

// Entry is one decoded log line.
type Entry map[string]any

// Level returns the entry's level field.
func (e Entry) Level() string { return e.str(zerolog.LevelFieldName) }

// Message returns the entry's message field.
func (e Entry) Message() string { return e.str(zerolog.MessageFieldName) }

// DessertID returns the dessert_id field, if any.
func (e Entry) DessertID() string { return e.str("dessert_id") }

func (e Entry) str(key string) string {
	s, _ := e[key].(string)
	return s
}

// TestLogger records JSON log output so tests can assert on entries.
type TestLogger struct {
	Logger *zerolog.Logger
	buf    *bytes.Buffer
}

// NewTestLogger returns a trace-level logger writing into memory.
// The global level is lowered for the duration of the test.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.TraceLevel)
	return &TestLogger{Logger: &logger, buf: buf}
}

// Entries decodes every recorded line. Lines that are not JSON are skipped.
func (tl *TestLogger) Entries() []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(tl.buf.Bytes()))
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Find returns the first entry with the given message.
func (tl *TestLogger) Find(message string) (Entry, bool) {
	for _, e := range tl.Entries() {
		if e.Message() == message {
			return e, true
		}
	}
	return nil, false
}

// Count returns the number of recorded entries.
func (tl *TestLogger) Count() int {
	return len(tl.Entries())
}

// Clear drops everything recorded so far.
func (tl *TestLogger) Clear() {
	tl.buf.Reset()
}

// AssertLogged fails t unless an entry with message was logged at level.
func (tl *TestLogger) AssertLogged(t testing.TB, level, message string) Entry {
	t.Helper()
	e, ok := tl.Find(message)
	if !ok {
		t.Errorf("no log entry %q\noutput:\n%s", message, tl.buf.String())
		return nil
	}
	if e.Level() != level {
		t.Errorf("log entry %q at level %q, want %q", message, e.Level(), level)
	}
	return e
}

// AssertNotLogged fails t if an entry with message was logged.
func (tl *TestLogger) AssertNotLogged(t testing.TB, message string) {
	t.Helper()
	if _, ok := tl.Find(message); ok {
		t.Errorf("unexpected log entry %q", message)
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
