package gate

import "strings"

// Hook is a callback run around a save attempt. Hooks fire even when the gate
// blocks the write, so downstream tooling (linters, formatters) behaves the
// same either way.
type Hook func(*Buffer)

// Buffer is an in-memory file buffer: the host editor's view of a file before
// it hits disk. It carries the modified flag the gate must preserve on a
// blocked or failed write.
type Buffer struct {
	path     string
	lines    []string
	modified bool

	preSave  []Hook
	postSave []Hook
}

// NewBuffer creates a buffer for path holding lines. A fresh buffer starts
// modified: it exists because the host has unsaved content.
func NewBuffer(path string, lines []string) *Buffer {
	return &Buffer{path: path, lines: lines, modified: true}
}

// Path returns the target file path.
func (b *Buffer) Path() string {
	return b.path
}

// Lines returns the buffer's line contents.
func (b *Buffer) Lines() []string {
	return b.lines
}

// SetLines replaces the contents and marks the buffer modified.
func (b *Buffer) SetLines(lines []string) {
	b.lines = lines
	b.modified = true
}

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool {
	return b.modified
}

// OnPreSave registers a hook to run before each save attempt.
func (b *Buffer) OnPreSave(h Hook) {
	b.preSave = append(b.preSave, h)
}

// OnPostSave registers a hook to run after each save attempt.
func (b *Buffer) OnPostSave(h Hook) {
	b.postSave = append(b.postSave, h)
}

func (b *Buffer) runPreSave() {
	for _, h := range b.preSave {
		h(b)
	}
}

func (b *Buffer) runPostSave() {
	for _, h := range b.postSave {
		h(b)
	}
}

// content serializes the buffer the way editors write files: lines joined
// with newlines plus a trailing newline. An empty buffer serializes to empty.
func (b *Buffer) content() []byte {
	if len(b.lines) == 0 {
		return nil
	}
	return []byte(strings.Join(b.lines, "\n") + "\n")
}
