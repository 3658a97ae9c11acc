package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initTestRepo creates a test git repository with an initial commit
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	if err := runCmd(dir, "git", "init"); err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	runCmd(dir, "git", "config", "user.email", "test@test.com")
	runCmd(dir, "git", "config", "user.name", "Test User")

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	runCmd(dir, "git", "add", ".")
	runCmd(dir, "git", "commit", "-m", "Initial commit")

	return dir
}

// initEmptyRepo creates a git repository with no commits
func initEmptyRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := runCmd(dir, "git", "init"); err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}
	runCmd(dir, "git", "config", "user.email", "test@test.com")
	runCmd(dir, "git", "config", "user.name", "Test User")
	return dir
}

func runCmd(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

// TestIsRepoTrue tests IsRepo inside a git repository
func TestIsRepoTrue(t *testing.T) {
	dir := initTestRepo(t)
	if !New(dir).IsRepo() {
		t.Error("IsRepo should return true in git repo")
	}
}

// TestIsRepoFalse tests IsRepo outside a git repository
func TestIsRepoFalse(t *testing.T) {
	dir := t.TempDir()
	if New(dir).IsRepo() {
		t.Error("IsRepo should return false outside git repo")
	}
}

// TestRoot tests resolving the repository top level
func TestRoot(t *testing.T) {
	dir := initTestRepo(t)

	root, ok := New(dir).Root()
	if !ok {
		t.Fatal("Root should resolve inside a repo")
	}
	if root == "" {
		t.Error("Root dir should not be empty")
	}

	if _, ok := New(t.TempDir()).Root(); ok {
		t.Error("Root should not resolve outside a repo")
	}
}

// TestIsCleanFreshRepo tests IsClean right after a commit
func TestIsCleanFreshRepo(t *testing.T) {
	dir := initTestRepo(t)
	if !New(dir).IsClean() {
		t.Error("Fresh repo should be clean")
	}
}

// TestIsCleanModifiedFile tests IsClean with an unstaged modification
func TestIsCleanModifiedFile(t *testing.T) {
	dir := initTestRepo(t)
	os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Modified"), 0644)

	if New(dir).IsClean() {
		t.Error("Repo with modified files should not be clean")
	}
}

// TestIsCleanUntrackedFile tests that untracked files count as pending changes
func TestIsCleanUntrackedFile(t *testing.T) {
	dir := initTestRepo(t)
	os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("untracked"), 0644)

	if New(dir).IsClean() {
		t.Error("Repo with untracked files should not be clean")
	}
}

// TestIsCleanStagedFile tests that staged-but-uncommitted changes count
func TestIsCleanStagedFile(t *testing.T) {
	dir := initTestRepo(t)
	os.WriteFile(filepath.Join(dir, "staged.txt"), []byte("staged"), 0644)
	runCmd(dir, "git", "add", "staged.txt")

	if New(dir).IsClean() {
		t.Error("Repo with staged changes should not be clean")
	}
}

// TestIsCleanOutsideRepo tests that a non-repo reports not clean
func TestIsCleanOutsideRepo(t *testing.T) {
	if New(t.TempDir()).IsClean() {
		t.Error("Outside a repo IsClean should degrade to false")
	}
}

// TestPendingCount tests counting dirty files
func TestPendingCount(t *testing.T) {
	dir := initTestRepo(t)
	c := New(dir)

	if n := c.PendingCount(); n != 0 {
		t.Errorf("Expected 0 pending in fresh repo, got %d", n)
	}

	os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Modified"), 0644)
	os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new"), 0644)

	if n := c.PendingCount(); n != 2 {
		t.Errorf("Expected 2 pending files, got %d", n)
	}
}

// TestLastCommitSubject tests reading the HEAD subject line
func TestLastCommitSubject(t *testing.T) {
	dir := initTestRepo(t)

	if got := New(dir).LastCommitSubject(); got != "Initial commit" {
		t.Errorf("Expected %q, got %q", "Initial commit", got)
	}

	os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0644)
	runCmd(dir, "git", "add", ".")
	runCmd(dir, "git", "commit", "-m", "wip")

	if got := New(dir).LastCommitSubject(); got != "wip" {
		t.Errorf("Expected %q, got %q", "wip", got)
	}
}

// TestLastCommitSubjectNoCommits tests the empty-repo edge case
func TestLastCommitSubjectNoCommits(t *testing.T) {
	dir := initEmptyRepo(t)

	if got := New(dir).LastCommitSubject(); got != "" {
		t.Errorf("Expected empty subject in empty repo, got %q", got)
	}
}

// TestFileHasChanges tests per-file pending change detection
func TestFileHasChanges(t *testing.T) {
	dir := initTestRepo(t)
	c := New(dir)

	if c.FileHasChanges("README.md") {
		t.Error("Committed file should have no pending changes")
	}

	os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Modified"), 0644)
	if !c.FileHasChanges("README.md") {
		t.Error("Modified file should have pending changes")
	}

	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644)
	if !c.FileHasChanges("other.txt") {
		t.Error("Untracked file should count as pending changes")
	}
}

// TestBranch tests that the branch name is captured
func TestBranch(t *testing.T) {
	dir := initTestRepo(t)

	branch := New(dir).Branch()
	if branch == "" {
		t.Error("Branch should not be empty")
	}
	if branch != "main" && branch != "master" && branch != "HEAD" {
		t.Logf("Branch name is %q (expected main/master/HEAD)", branch)
	}
}

// TestMainRootInMainCheckout tests that MainRoot agrees with Root outside worktrees
func TestMainRootInMainCheckout(t *testing.T) {
	dir := initTestRepo(t)
	c := New(dir)

	root, ok := c.Root()
	if !ok {
		t.Fatal("Root should succeed in a repo")
	}
	main, ok := c.MainRoot()
	if !ok {
		t.Fatal("MainRoot should succeed in a repo")
	}
	rootResolved, _ := filepath.EvalSymlinks(root)
	mainResolved, _ := filepath.EvalSymlinks(main)
	if rootResolved != mainResolved {
		t.Errorf("MainRoot = %q, want %q", main, root)
	}
}

// TestMainRootFromLinkedWorktree tests that MainRoot points at the main checkout
func TestMainRootFromLinkedWorktree(t *testing.T) {
	dir := initTestRepo(t)
	wt := filepath.Join(t.TempDir(), "wt")
	if err := runCmd(dir, "git", "worktree", "add", wt, "-b", "side"); err != nil {
		t.Fatalf("worktree add: %v", err)
	}

	main, ok := New(wt).MainRoot()
	if !ok {
		t.Fatal("MainRoot should succeed in a worktree")
	}
	dirResolved, _ := filepath.EvalSymlinks(dir)
	mainResolved, _ := filepath.EvalSymlinks(main)
	if mainResolved != dirResolved {
		t.Errorf("MainRoot from worktree = %q, want %q", main, dir)
	}
}

// TestMainRootOutsideRepo tests failure outside a repository
func TestMainRootOutsideRepo(t *testing.T) {
	if _, ok := New(t.TempDir()).MainRoot(); ok {
		t.Error("MainRoot should fail outside a repository")
	}
}
