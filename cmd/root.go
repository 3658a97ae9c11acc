package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/commitgate/internal/workdir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	versionStr string
	workDir    string // where git queries run
	baseDir    string // where the .commitgate config lives
	debug      bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	versionStr = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "commitgate",
	Short: "Nags you to commit, and can stop you writing until you do",
	Long: `commitgate - A commit nag for editors and wrapper scripts.

Counts buffer writes since the last commit, warns when you let too many
pile up, flags meaningless commit messages ("wip", "fix", ...), and in
hardcore mode refuses to write the buffer until the tree is committed
with a message worth keeping.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging, initBaseDir)

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Accept snake_case flag spellings alongside the canonical kebab-case.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "gate", Title: "Gate Commands:"},
		&cobra.Group{ID: "config", Title: "Configuration Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

func initLogging() {
	level := slog.LevelInfo
	if debug || os.Getenv("COMMITGATE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	workDir = cwd
	baseDir = workdir.ResolveBaseDir(cwd)
}

// getBaseDir returns the directory whose .commitgate config governs this run
func getBaseDir() string {
	return baseDir
}
