package logging

import "sync"

// MockEntry captures a single log call made against a MockLogger.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// MockLogger is a Logger implementation for tests. It records every call so
// tests can assert on log output without touching logrus.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockEntry
	fields  []Field
	err     error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Entries returns a copy of all recorded log entries.
func (m *MockLogger) Entries() []MockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// CountLevel returns the number of recorded entries at the given level.
func (m *MockLogger) CountLevel(level string) int {
	n := 0
	for _, e := range m.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.entries = append(m.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("fatal", msg, nil)
}

// WithError returns a child logger carrying the error; entries recorded by the
// child still land in the parent's entry list.
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{parent: m, fields: m.fields, err: err}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: m, fields: append(append([]Field{}, m.fields...), Field{Key: key, Value: value})}
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &mockChild{parent: m, fields: append(append([]Field{}, m.fields...), fields...)}
}

// mockChild forwards records to the root MockLogger with accumulated context.
type mockChild struct {
	parent *MockLogger
	fields []Field
	err    error
}

func (c *mockChild) record(level, msg string, fields []Field) {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	all := append(append([]Field{}, c.fields...), fields...)
	c.parent.entries = append(c.parent.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: c.err})
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *mockChild) Error(msg string, fields ...Field) { c.record("error", msg, fields) }
func (c *mockChild) Fatal(msg string, fields ...Field) { c.record("fatal", msg, fields) }

func (c *mockChild) Fatalf(msg string, args ...interface{}) {
	c.record("fatal", msg, nil)
}

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{parent: c.parent, fields: c.fields, err: err}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: c.parent, fields: append(append([]Field{}, c.fields...), Field{Key: key, Value: value}), err: c.err}
}

func (c *mockChild) WithFields(fields ...Field) Logger {
	return &mockChild{parent: c.parent, fields: append(append([]Field{}, c.fields...), fields...), err: c.err}
}
