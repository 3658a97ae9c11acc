// Package git answers read-only questions about repository state (is this a
// repo, is the tree clean, what was the last commit subject) by shelling out
// to the git binary.
//
// Every query degrades to its zero value on subprocess failure: a missing git
// binary, a non-repo directory, and a genuinely negative answer all look the
// same to callers. Calls are synchronous and carry no timeout; a hung git
// invocation stalls the caller.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Inspector is the read-only repository interface the gate evaluates against.
type Inspector interface {
	IsRepo() bool
	IsClean() bool
	LastCommitSubject() string
	FileHasChanges(path string) bool
}

// CLI implements Inspector by invoking the git binary pinned to one working
// directory.
type CLI struct {
	dir string
}

// New returns a CLI inspector rooted at dir.
func New(dir string) *CLI {
	return &CLI{dir: dir}
}

// IsRepo reports whether dir is inside a git working tree.
func (c *CLI) IsRepo() bool {
	out, err := c.run("rev-parse", "--show-toplevel")
	return err == nil && strings.TrimSpace(out) != ""
}

// Root returns the repository's top-level directory. ok is false outside a
// repo or when git is unavailable.
func (c *CLI) Root() (string, bool) {
	out, err := c.run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", false
	}
	root := strings.TrimSpace(out)
	return root, root != ""
}

// MainRoot returns the main worktree's top-level directory. From a linked
// worktree this differs from Root; from the main checkout both agree. ok is
// false outside a repo or when git is unavailable.
func (c *CLI) MainRoot() (string, bool) {
	out, err := c.run("rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", false
	}
	gitDir := strings.TrimSpace(out)
	if gitDir == "" {
		return "", false
	}
	return filepath.Dir(gitDir), true
}

// IsClean reports whether the tree has zero pending changes, staged,
// unstaged, or untracked.
func (c *CLI) IsClean() bool {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == ""
}

// PendingCount returns the number of porcelain status lines (dirty files).
func (c *CLI) PendingCount() int {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return 0
	}
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}

// LastCommitSubject returns the subject line of HEAD, or "" when the
// repository has no commits.
func (c *CLI) LastCommitSubject() string {
	out, err := c.run("show", "-s", "--format=%s", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// FileHasChanges reports whether one specific path has uncommitted changes.
func (c *CLI) FileHasChanges(path string) bool {
	out, err := c.run("status", "--porcelain", "--", path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

// Branch returns the current branch name, or "HEAD" when detached.
func (c *CLI) Branch() string {
	out, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func (c *CLI) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %s", err, stderr.String())
	}

	return stdout.String(), nil
}
