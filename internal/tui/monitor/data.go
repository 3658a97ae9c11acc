package monitor

import (
	"time"

	"github.com/marcus/commitgate/internal/classify"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/git"
	"github.com/marcus/commitgate/internal/notify"
)

// Snapshot is one refresh worth of display data.
type Snapshot struct {
	Gate    gate.State
	Branch  string
	Clean   bool
	Pending int
	Subject string
	Useless bool
	History []notify.Entry
	Taken   time.Time
}

// Fetch ticks the gate once and gathers everything the panels show. The
// monitor drives its own evaluation loop; notifications land in the memory
// sink feeding the history panel.
func Fetch(g *gate.Gate, repo *git.CLI, mem *notify.Memory) Snapshot {
	g.Tick()
	subject := repo.LastCommitSubject()
	return Snapshot{
		Gate:    g.State(),
		Branch:  repo.Branch(),
		Clean:   repo.IsClean(),
		Pending: repo.PendingCount(),
		Subject: subject,
		Useless: classify.IsUseless(subject),
		History: mem.Entries(),
		Taken:   time.Now(),
	}
}
