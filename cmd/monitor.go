package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/commitgate/internal/notify"
	"github.com/marcus/commitgate/internal/output"
	"github.com/marcus/commitgate/internal/tui/monitor"
	"github.com/spf13/cobra"
)

var monitorRefresh int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live TUI showing gate and repository state",
	Long: `Opens a full-screen view that evaluates the gate on a refresh tick and
shows the lock state, the repository, and the notification history.`,
	GroupID: "gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		// Nags land in the history panel instead of stdout; the debounce
		// window still applies.
		mem := &notify.Memory{}
		g, repo, err := openGate(cfg, notify.NewDebounced(mem, time.Duration(cfg.Notify.DebounceMS)*time.Millisecond))
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if !repo.IsRepo() {
			output.Subtle("not a git repository; nothing to monitor")
			return nil
		}

		interval := 2 * time.Second
		if monitorRefresh > 0 {
			interval = time.Duration(monitorRefresh) * time.Second
		} else if cfg.CheckInterval > 0 {
			interval = time.Duration(cfg.CheckInterval) * time.Minute
		}

		m := monitor.NewModel(g, repo, mem, interval)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	monitorCmd.Flags().IntVar(&monitorRefresh, "refresh", 0, "refresh interval in seconds")
	rootCmd.AddCommand(monitorCmd)
}
