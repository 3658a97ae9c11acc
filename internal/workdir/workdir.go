// Package workdir resolves the directory holding the .commitgate config,
// supporting git worktree redirection via .commitgate-root files.
package workdir

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/commitgate/internal/git"
)

const (
	rootFile  = ".commitgate-root"
	configDir = ".commitgate"
)

// ResolveBaseDir finds the directory whose .commitgate config governs dir.
//
// A .commitgate-root file in dir or in the repository root redirects to
// another directory (relative paths resolve against the file's location),
// letting git worktrees share one config with the main checkout. Without a
// redirect, the repository root is used when it carries a .commitgate
// directory; otherwise dir is returned unchanged.
func ResolveBaseDir(dir string) string {
	if redirected, ok := readRedirect(dir); ok {
		return redirected
	}

	repo := git.New(dir)
	root, ok := repo.Root()
	if !ok {
		return dir
	}

	if root != dir {
		if redirected, ok := readRedirect(root); ok {
			return redirected
		}
		if hasConfigDir(root) {
			return root
		}
	}

	// Linked worktrees fall back to the main checkout's markers.
	if main, ok := repo.MainRoot(); ok && main != root {
		if redirected, ok := readRedirect(main); ok {
			return redirected
		}
		if hasConfigDir(main) {
			return main
		}
	}
	return dir
}

func hasConfigDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, configDir))
	return err == nil && fi.IsDir()
}

// readRedirect reads a .commitgate-root file in dir, if any, and resolves the
// target path it names.
func readRedirect(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}
	target := strings.TrimSpace(string(content))
	if target == "" {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return target, true
}
