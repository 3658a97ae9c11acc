package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcus/commitgate/internal/output"
	"github.com/marcus/commitgate/internal/sched"
	"github.com/spf13/cobra"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the interval-mode daemon",
	Long: `Evaluates the gate on a fixed interval until interrupted. Interval mode
requires check_interval to be set to a positive number of minutes
(or pass --interval); the default configuration is event-driven.`,
	GroupID: "gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		minutes := cfg.CheckInterval
		if watchInterval > 0 {
			minutes = watchInterval
		}
		if minutes <= 0 {
			return fmt.Errorf("interval mode disabled: set check_interval to a positive number of minutes or pass --interval")
		}

		g, repo, err := openGate(cfg, buildSink(cfg))
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if !repo.IsRepo() {
			output.Subtle("not a git repository; gate disabled")
			return nil
		}

		interval := time.Duration(minutes) * time.Minute
		output.Info("watching every %s (ctrl+c to stop)", interval)

		h := sched.Every(interval, func() {
			d := g.Tick()
			persistGate(g)
			slog.Debug("gate tick", "locked", d.Locked, "reason", d.Reason.String(), "writes", g.State().Writes)
		})

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig

		h.Stop()
		slog.Debug("watch stopped", "signal", s.String())
		return nil
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "override check interval in minutes")
	rootCmd.AddCommand(watchCmd)
}
