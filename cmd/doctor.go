package cmd

import (
	"fmt"
	"net/url"
	"os/exec"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/git"
	"github.com/marcus/commitgate/internal/version"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Short:   "Run diagnostic checks for the gate setup",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor()
		return nil
	},
}

func runDoctor() {
	// 1. git binary
	gitPath, err := exec.LookPath("git")
	gitOK := err == nil
	if gitOK {
		fmt.Printf("Git binary ............. OK (%s)\n", gitPath)
	} else {
		fmt.Printf("Git binary ............. FAIL (not on PATH)\n")
	}

	// 2. Repository
	repo := git.New(workDir)
	repoOK := false
	if !gitOK {
		fmt.Printf("Repository ............. SKIP\n")
	} else if root, ok := repo.Root(); ok {
		repoOK = true
		fmt.Printf("Repository ............. OK (%s)\n", root)
	} else {
		fmt.Printf("Repository ............. FAIL (not inside a git repository)\n")
	}

	// 3. Commit history
	if !repoOK {
		fmt.Printf("Commit history ......... SKIP\n")
	} else if subject := repo.LastCommitSubject(); subject != "" {
		fmt.Printf("Commit history ......... OK (%q)\n", subject)
	} else {
		fmt.Printf("Commit history ......... WARN (no commits yet)\n")
	}

	// 4. Config file
	cfg, err := config.Load(getBaseDir())
	cfgOK := err == nil
	if cfgOK {
		fmt.Printf("Config ................. OK\n")
	} else {
		fmt.Printf("Config ................. FAIL (%v)\n", err)
	}

	// 5. Webhook URL shape
	if !cfgOK || cfg.Notify.Webhook.URL == "" {
		fmt.Printf("Webhook ................ SKIP (not configured)\n")
	} else if u, err := url.Parse(cfg.Notify.Webhook.URL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		fmt.Printf("Webhook ................ OK (%s)\n", u.Host)
	} else {
		fmt.Printf("Webhook ................ FAIL (malformed URL)\n")
	}

	// 6. Update available
	if version.IsDevelopmentVersion(versionStr) {
		fmt.Printf("Update check ........... SKIP (dev build)\n")
	} else if res := version.Check(versionStr); res.Error != nil {
		fmt.Printf("Update check ........... FAIL (%v)\n", res.Error)
	} else if res.HasUpdate {
		fmt.Printf("Update check ........... %s available\n", res.LatestVersion)
		if cmd := version.UpdateCommand(res.LatestVersion); cmd != "" {
			fmt.Printf("  %s\n", cmd)
		}
	} else {
		fmt.Printf("Update check ........... OK (up to date)\n")
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
