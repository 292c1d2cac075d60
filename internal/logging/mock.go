package logging

// MockLogger is a Logger implementation for tests. It records every entry so
// assertions can inspect what was logged. Loggers derived via WithError or
// WithField record into the logger they were derived from, so the test keeps
// seeing everything through the root mock.
type MockLogger struct {
	Entries       []LogEntry
	parent        *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// root walks back to the logger the test holds.
func (m *MockLogger) root() *MockLogger {
	if m.parent != nil {
		return m.parent
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(m.pendingFields, fields...)
	target := m.root()
	target.Entries = append(target.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// Fatal logs a fatal-level message. The mock does not exit the program.
func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("FATAL", msg, fields)
}

// WithError returns a derived MockLogger that attaches err to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		parent:        m.root(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived MockLogger that attaches the field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	fields := make([]Field, len(m.pendingFields), len(m.pendingFields)+1)
	copy(fields, m.pendingFields)
	return &MockLogger{
		parent:        m.root(),
		pendingError:  m.pendingError,
		pendingFields: append(fields, Field{Key: key, Value: value}),
	}
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, entry := range m.root().Entries {
		if entry.Message == msg {
			return true
		}
	}
	return false
}
