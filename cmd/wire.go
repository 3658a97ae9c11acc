package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/git"
	"github.com/marcus/commitgate/internal/notify"
)

// loadConfig reads the effective config for the resolved base dir.
func loadConfig() (*config.Config, error) {
	return config.Load(getBaseDir())
}

// buildSink assembles the notification pipeline: terminal always, webhook
// when configured, the whole fanout behind the debounce window. extra sinks
// (the monitor's memory buffer) bypass nothing; they join the fanout.
func buildSink(cfg *config.Config, extra ...notify.Sink) notify.Sink {
	sinks := notify.Fanout{notify.Terminal{}}
	if cfg.Notify.Webhook.URL != "" {
		sinks = append(sinks, &notify.Webhook{
			URL:    cfg.Notify.Webhook.URL,
			Secret: cfg.Notify.Webhook.Secret,
			Repo:   getBaseDir(),
		})
	}
	sinks = append(sinks, extra...)
	return notify.NewDebounced(sinks, time.Duration(cfg.Notify.DebounceMS)*time.Millisecond)
}

// buildGate wires a gate against the working directory's repository.
func buildGate(cfg *config.Config, sink notify.Sink) (*gate.Gate, *git.CLI) {
	repo := git.New(workDir)
	return gate.New(cfg, repo, sink), repo
}

// openGate builds the gate and, inside a repository, primes it with the state
// left behind by the previous invocation. Event-driven mode runs one process
// per evaluation; the write counter lives in .commitgate/state.json between
// them.
func openGate(cfg *config.Config, sink notify.Sink) (*gate.Gate, *git.CLI, error) {
	g, repo := buildGate(cfg, sink)
	if repo.IsRepo() {
		st, err := gate.LoadState(getBaseDir())
		if err != nil {
			return nil, nil, fmt.Errorf("load gate state: %w", err)
		}
		g.Restore(st)
	}
	return g, repo, nil
}

// persistGate stores the counter for the next invocation. Persistence failures
// are logged and otherwise ignored; a read-only filesystem must not break the
// save path.
func persistGate(g *gate.Gate) {
	if err := gate.SaveState(getBaseDir(), g.State()); err != nil {
		slog.Debug("persist gate state", "err", err)
	}
}
