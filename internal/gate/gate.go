// Package gate implements the write gate: the state machine that decides, on
// every save attempt or scheduler tick, whether to allow the write, warn, or
// block it until the tree is committed with a useful message.
package gate

import (
	"github.com/marcus/commitgate/internal/classify"
	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/git"
	"github.com/marcus/commitgate/internal/notify"
)

// LockedSuffix is appended to warnings while hardcore mode is blocking writes.
const LockedSuffix = " (writing disabled)"

// Reason identifies what put the gate into the locked state.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTooManyWrites
	ReasonUselessCommit
)

func (r Reason) String() string {
	switch r {
	case ReasonTooManyWrites:
		return "too_many_writes"
	case ReasonUselessCommit:
		return "useless_commit"
	default:
		return "none"
	}
}

// State is a snapshot of the gate's mutable state, for status and monitor
// display.
type State struct {
	Writes int    `json:"writes"`
	Locked bool   `json:"locked"`
	Reason string `json:"reason"`
}

// Decision is the outcome of one evaluation tick.
type Decision struct {
	Locked  bool
	Reason  Reason
	Message string // non-empty when a warning was emitted this tick
}

// Gate owns the write counter and the locked flag. It is constructed once and
// handed by reference to the scheduler and the save path; there are no package
// globals. Gate is not safe for concurrent use; the host event loop delivers
// ticks and saves serially.
type Gate struct {
	cfg  *config.Config
	repo git.Inspector
	sink notify.Sink

	writes int
	locked bool
	reason Reason
}

// New wires a gate to its repository inspector and notification sink.
func New(cfg *config.Config, repo git.Inspector, sink notify.Sink) *Gate {
	return &Gate{cfg: cfg, repo: repo, sink: sink}
}

// Config returns the gate's immutable configuration.
func (g *Gate) Config() *config.Config {
	return g.cfg
}

// State returns a snapshot of the counter and lock flag.
func (g *Gate) State() State {
	return State{Writes: g.writes, Locked: g.locked, Reason: g.reason.String()}
}

// Locked reports whether the gate is currently blocking writes.
func (g *Gate) Locked() bool {
	return g.locked
}

// Tick runs one evaluation step. In priority order:
//
//  1. clean tree and a useful last commit: unlock and reset the counter;
//  2. a dirty tree past the write budget, or a clean tree with a useless
//     commit message: lock and warn;
//  3. otherwise nothing changes.
//
// The write counter increments unconditionally after the branch, including on
// the tick that just reset it: immediately after a clean commit the counter
// reads 1, not 0.
func (g *Gate) Tick() Decision {
	clean := g.repo.IsClean()
	useless := g.cfg.StopOnUselessCommit && classify.IsUseless(g.repo.LastCommitSubject())
	exceeded := g.writes > g.cfg.WritesNumber

	var d Decision
	switch {
	case clean && !useless:
		g.locked = false
		g.reason = ReasonNone
		g.writes = 0

	case (!clean && exceeded) || (clean && useless):
		g.locked = true
		if clean && useless {
			g.reason = ReasonUselessCommit
		} else {
			g.reason = ReasonTooManyWrites
		}
		d.Message = g.warning()
		g.sink.Notify(notify.Warn, d.Message)
	}

	g.writes++
	d.Locked = g.locked
	d.Reason = g.reason
	return d
}

// warning selects the message for the current lock reason. The useless-commit
// nag always uses its dedicated message; the write-budget nag uses the
// hardcore message only when hardcore mode will actually block. While blocking
// is active the disabled-writing suffix is appended.
func (g *Gate) warning() string {
	var msg string
	switch g.reason {
	case ReasonUselessCommit:
		msg = g.cfg.MessageUselessCommit
	case ReasonTooManyWrites:
		if g.cfg.PreventWrite {
			msg = g.cfg.MessageWritePrevent
		} else {
			msg = g.cfg.Message
		}
	default:
		msg = g.cfg.Message
	}
	if g.cfg.PreventWrite && g.locked {
		msg += LockedSuffix
	}
	return msg
}
