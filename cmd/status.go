package cmd

import (
	"fmt"

	"github.com/marcus/commitgate/internal/classify"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

var statusJSON bool

// repoStatus is the --json shape of the status snapshot.
type repoStatus struct {
	Repo          bool   `json:"repo"`
	Branch        string `json:"branch,omitempty"`
	Clean         bool   `json:"clean"`
	Pending       int    `json:"pending"`
	Subject       string `json:"subject,omitempty"`
	Useless       bool   `json:"useless"`
	Writes        int    `json:"writes"`
	Locked        bool   `json:"locked"`
	WritesNumber  int    `json:"writes_number"`
	PreventWrite  bool   `json:"prevent_write"`
	CheckInterval int    `json:"check_interval"`
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show repository state as the gate sees it",
	GroupID: "gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		_, repo := buildGate(cfg, buildSink(cfg))

		st := repoStatus{
			Repo:          repo.IsRepo(),
			WritesNumber:  cfg.WritesNumber,
			PreventWrite:  cfg.PreventWrite,
			CheckInterval: cfg.CheckInterval,
		}
		if st.Repo {
			st.Branch = repo.Branch()
			st.Clean = repo.IsClean()
			st.Pending = repo.PendingCount()
			st.Subject = repo.LastCommitSubject()
			st.Useless = classify.IsUseless(st.Subject)
			// Read-only view of the persisted counter; status never ticks.
			if gs, err := gate.LoadState(getBaseDir()); err == nil {
				st.Writes = gs.Writes
				st.Locked = gs.Locked
			}
		}

		if statusJSON {
			output.JSON(st)
			return nil
		}

		if !st.Repo {
			output.Subtle("not a git repository")
			return nil
		}

		fmt.Println(output.Title("commitgate status"))
		fmt.Printf("Branch:  %s\n", st.Branch)
		fmt.Printf("Tree:    %s\n", output.FormatRepoState(st.Clean, st.Pending))
		subject := st.Subject
		if subject == "" {
			subject = "(no commits yet)"
		}
		fmt.Printf("HEAD:    %s", subject)
		if st.Useless {
			fmt.Printf("  %s", output.WarningText("[meaningless]"))
		}
		fmt.Println()
		fmt.Printf("Gate:    %s, %d writes\n", output.FormatGateState(st.Locked), st.Writes)
		mode := "event-driven"
		if st.CheckInterval > 0 {
			mode = fmt.Sprintf("every %d min", st.CheckInterval)
		}
		fmt.Printf("Mode:    %s, budget %d writes", mode, st.WritesNumber)
		if st.PreventWrite {
			fmt.Printf(", hardcore")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "machine-readable output")
	rootCmd.AddCommand(statusCmd)
}
