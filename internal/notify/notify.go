// Package notify delivers user-facing nag messages. The gate depends only on
// the Sink interface; concrete sinks (terminal, webhook) are chosen once at
// wiring time and composed with the debounce wrapper.
package notify

import (
	"sync"

	"github.com/marcus/commitgate/internal/output"
)

// Severity is the notification level passed to sinks.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Sink delivers one notification to the user.
type Sink interface {
	Notify(level Severity, message string)
}

// Terminal prints notifications with the standard styled output helpers.
type Terminal struct{}

func (Terminal) Notify(level Severity, message string) {
	switch level {
	case Error:
		output.Error("%s", message)
	case Warn:
		output.Warning("%s", message)
	default:
		output.Info("%s", message)
	}
}

// Entry is one recorded notification.
type Entry struct {
	Level   Severity
	Message string
}

// Memory records notifications instead of delivering them. Used by tests and
// by the monitor TUI's history panel.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

func (m *Memory) Notify(level Severity, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Message: message})
}

// Entries returns a copy of everything recorded so far.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Reset discards everything recorded so far.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

// Len returns the number of recorded notifications.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Fanout forwards each notification to every sink in order.
type Fanout []Sink

func (f Fanout) Notify(level Severity, message string) {
	for _, s := range f {
		s.Notify(level, message)
	}
}
