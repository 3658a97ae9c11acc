package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

var (
	saveFrom  string
	saveForce bool
	saveJSON  bool
)

var saveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Write buffer content to a file through the gate",
	Long: `Performs a gated save: reads the buffer content from stdin (or --from),
runs one gate evaluation, then writes the target file unless hardcore
mode is blocking writes. The write counter carries over from previous
invocations via .commitgate/state.json.

A blocked save leaves the file untouched and exits 2. Outside a git
repository the gate is disabled and the write goes through.`,
	GroupID: "gate",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readBufferLines(cmd.InOrStdin())
		if err != nil {
			output.Error("read buffer: %v", err)
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		res, err := runSave(cfg, args[0], lines, saveForce)
		if err != nil {
			return err
		}

		if saveJSON {
			output.JSON(res)
			if res.Status == gate.Blocked {
				os.Exit(2)
			}
			return nil
		}

		switch res.Status {
		case gate.Saved:
			fmt.Printf("%q %dL, %dB written\n", res.Path, res.Lines, res.Bytes)
		case gate.Unchanged:
			output.Subtle("%s: no changes to write", res.Path)
		case gate.Blocked:
			os.Exit(2)
		}
		return nil
	},
}

// runSave performs one gated save: restore the persisted counter, tick,
// persist the updated counter, then hand the buffer to the gate.
func runSave(cfg *config.Config, path string, lines []string, force bool) (gate.SaveResult, error) {
	g, repo, err := openGate(cfg, buildSink(cfg))
	if err != nil {
		return gate.SaveResult{}, err
	}
	if repo.IsRepo() {
		g.Tick()
		persistGate(g)
	}

	return g.Save(gate.NewBuffer(path, lines), force)
}

// readBufferLines reads the buffer content (stdin or --from file) and splits
// it into lines the way an editor buffer holds them: no trailing newline
// entry.
func readBufferLines(stdin io.Reader) ([]string, error) {
	var data []byte
	var err error
	if saveFrom != "" {
		data, err = os.ReadFile(saveFrom)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.Split(s, "\n"), nil
}

func init() {
	saveCmd.Flags().StringVar(&saveFrom, "from", "", "read buffer content from a file instead of stdin")
	saveCmd.Flags().BoolVar(&saveForce, "force", false, "write even when the buffer reports no changes")
	saveCmd.Flags().BoolVar(&saveJSON, "json", false, "machine-readable output")
	rootCmd.AddCommand(saveCmd)
}
