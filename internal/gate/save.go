package gate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marcus/commitgate/internal/notify"
)

// SaveStatus classifies the outcome of a save attempt.
type SaveStatus int

const (
	// Saved means the buffer was written to disk.
	Saved SaveStatus = iota
	// Blocked means hardcore mode suppressed the write; the file is untouched.
	Blocked
	// Unchanged means the buffer had no unsaved changes and no force flag.
	Unchanged
)

func (s SaveStatus) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Unchanged:
		return "unchanged"
	default:
		return "saved"
	}
}

// MarshalJSON emits the string form, so machine consumers read "blocked"
// rather than an enum ordinal.
func (s SaveStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SaveResult describes what a save attempt did.
type SaveResult struct {
	Status  SaveStatus `json:"status"`
	Path    string     `json:"path"`
	Lines   int        `json:"lines,omitempty"`
	Bytes   int        `json:"bytes,omitempty"`
	Message string     `json:"message,omitempty"` // the warning on a blocked save
}

// Save attempts to persist the buffer. force bypasses the modified check but
// remains subject to the lock.
//
// Pre- and post-save hooks run on every attempt, including blocked ones. A
// blocked save leaves the file and the modified flag untouched. A failed
// filesystem write surfaces one error-severity notification and also leaves
// the modified flag set, so the host keeps warning about unsaved changes.
func (g *Gate) Save(b *Buffer, force bool) (SaveResult, error) {
	if !force && !b.Modified() {
		return SaveResult{Status: Unchanged, Path: b.path}, nil
	}

	b.runPreSave()

	if g.locked && g.cfg.PreventWrite {
		b.runPostSave()
		msg := g.warning()
		g.sink.Notify(notify.Warn, msg)
		return SaveResult{Status: Blocked, Path: b.path, Message: msg}, nil
	}

	data := b.content()
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		g.sink.Notify(notify.Error, fmt.Sprintf("write %s: %v", b.path, err))
		return SaveResult{Path: b.path}, err
	}

	b.modified = false
	b.runPostSave()
	return SaveResult{Status: Saved, Path: b.path, Lines: len(b.lines), Bytes: len(data)}, nil
}
