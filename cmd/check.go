package cmd

import (
	"os"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

var checkJSON bool

// checkResult is the --json shape of one evaluation.
type checkResult struct {
	Allowed bool   `json:"allowed"`
	Locked  bool   `json:"locked"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one gate evaluation (event-driven mode)",
	Long: `Runs a single gate evaluation against the current repository and reports
whether a write would be allowed right now. The write counter carries
over from previous invocations via .commitgate/state.json.

Exit code 0 means the write is allowed (warnings may still print);
exit code 2 means hardcore mode would block it.`,
	GroupID: "gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		res, inRepo, err := runCheck(cfg)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if checkJSON {
			output.JSON(res)
		} else if !inRepo {
			output.Subtle("not a git repository; gate disabled")
		}

		if !res.Allowed {
			os.Exit(2)
		}
		return nil
	},
}

// runCheck performs one gate evaluation: restore the persisted counter, tick,
// persist the updated counter. Outside a repository the gate is disabled and
// the result always allows the write.
func runCheck(cfg *config.Config) (checkResult, bool, error) {
	g, repo, err := openGate(cfg, buildSink(cfg))
	if err != nil {
		return checkResult{}, false, err
	}
	if !repo.IsRepo() {
		return checkResult{Allowed: true, Reason: gate.ReasonNone.String()}, false, nil
	}

	d := g.Tick()
	persistGate(g)

	blocked := d.Locked && cfg.PreventWrite
	return checkResult{
		Allowed: !blocked,
		Locked:  d.Locked,
		Reason:  d.Reason.String(),
		Message: d.Message,
	}, true, nil
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "machine-readable output")
	rootCmd.AddCommand(checkCmd)
}
