package gate

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const stateFile = ".commitgate/state.json"

// LoadState reads the persisted counter for event-driven mode, where every
// evaluation runs in its own short-lived process. A missing file yields the
// zero state; a corrupt file is treated the same, so a damaged state file can
// never wedge the gate shut.
func LoadState(baseDir string) (State, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, stateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return State{Reason: ReasonNone.String()}, nil
		}
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{Reason: ReasonNone.String()}, nil
	}
	return st, nil
}

// SaveState persists the counter using an atomic write (temp file + rename),
// so a crashed process leaves either the old state or the new one.
func SaveState(baseDir string, st State) error {
	statePath := filepath.Join(baseDir, stateFile)

	if err := os.MkdirAll(filepath.Dir(statePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(statePath), "state-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, statePath)
}

// Restore primes the gate with a previously persisted state.
func (g *Gate) Restore(st State) {
	g.writes = st.Writes
	g.locked = st.Locked
	g.reason = reasonFromString(st.Reason)
}

func reasonFromString(s string) Reason {
	switch s {
	case "too_many_writes":
		return ReasonTooManyWrites
	case "useless_commit":
		return ReasonUselessCommit
	default:
		return ReasonNone
	}
}
