package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/gate"
)

// useGitBase points the command layer at a throwaway git repository with an
// initial commit, so event-driven commands run against real repo state.
func useGitBase(t *testing.T) string {
	t.Helper()

	dir := useTempBase(t)
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}
	run("init")
	run("config", "user.email", "test@test.com")
	run("config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test"), 0644); err != nil {
		t.Fatal(err)
	}
	run("add", ".")
	run("commit", "-m", "Initial commit")
	return dir
}

// Consecutive save invocations each run in a fresh process; the write counter
// must carry over through the state file so the budget can actually trip.
func TestConsecutiveSavesTripWriteBudget(t *testing.T) {
	dir := useGitBase(t)

	cfgJSON := []byte(`{"writes_number": 1, "prevent_write": true, "check_interval": -1}`)
	if err := os.MkdirAll(filepath.Join(dir, ".commitgate"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".commitgate", "config.json"), cfgJSON, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	target := filepath.Join(dir, "notes.txt")

	// Save 1 evaluates a clean tree: counter resets to 1, write allowed.
	res, err := runSave(cfg, target, []string{"one"}, false)
	if err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if res.Status != gate.Saved {
		t.Fatalf("save 1 status = %v, want Saved", res.Status)
	}

	// Save 2 observes counter 1, within the budget of 1 (strict threshold).
	res, err = runSave(cfg, target, []string{"two"}, false)
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if res.Status != gate.Saved {
		t.Fatalf("save 2 status = %v, want Saved", res.Status)
	}

	// Save 3 observes counter 2 > budget 1: locked, hardcore message, no write.
	res, err = runSave(cfg, target, []string{"three"}, false)
	if err != nil {
		t.Fatalf("save 3: %v", err)
	}
	if res.Status != gate.Blocked {
		t.Fatalf("save 3 status = %v, want Blocked", res.Status)
	}
	want := cfg.MessageWritePrevent + gate.LockedSuffix
	if res.Message != want {
		t.Errorf("save 3 message = %q, want %q", res.Message, want)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "two\n" {
		t.Errorf("blocked save changed the file: %q", data)
	}

	st, err := gate.LoadState(dir)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !st.Locked || st.Reason != "too_many_writes" {
		t.Errorf("persisted state = %+v, want locked too_many_writes", st)
	}
}

func TestCheckReportsBlockedAcrossInvocations(t *testing.T) {
	dir := useGitBase(t)

	cfg := config.Default()
	cfg.WritesNumber = 1
	cfg.PreventWrite = true

	target := filepath.Join(dir, "notes.txt")
	for i, lines := range [][]string{{"one"}, {"two"}, {"three"}} {
		if _, err := runSave(cfg, target, lines, false); err != nil {
			t.Fatalf("save %d: %v", i+1, err)
		}
	}

	res, inRepo, err := runCheck(cfg)
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !inRepo {
		t.Fatal("expected repository detection")
	}
	if res.Allowed {
		t.Error("check must report blocked while the gate is locked in hardcore mode")
	}
	if res.Reason != "too_many_writes" {
		t.Errorf("reason = %q, want too_many_writes", res.Reason)
	}
}

func TestCommitUnlocksPersistedGate(t *testing.T) {
	dir := useGitBase(t)

	cfg := config.Default()
	cfg.WritesNumber = 1
	cfg.PreventWrite = true

	target := filepath.Join(dir, "notes.txt")
	for _, lines := range [][]string{{"one"}, {"two"}, {"three"}} {
		if _, err := runSave(cfg, target, lines, false); err != nil {
			t.Fatal(err)
		}
	}
	if st, _ := gate.LoadState(dir); !st.Locked {
		t.Fatal("gate should be locked before the commit")
	}

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}
	run("add", ".")
	run("commit", "-m", "add notes")

	res, _, err := runCheck(cfg)
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !res.Allowed || res.Locked {
		t.Errorf("check after useful commit = %+v, want unlocked", res)
	}

	st, err := gate.LoadState(dir)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Locked || st.Writes != 1 {
		t.Errorf("persisted state after commit = %+v, want unlocked with counter 1", st)
	}
}

func TestSaveOutsideRepoSkipsState(t *testing.T) {
	dir := useTempBase(t)

	cfg := config.Default()
	cfg.WritesNumber = 1
	cfg.PreventWrite = true

	target := filepath.Join(dir, "notes.txt")
	for _, lines := range [][]string{{"one"}, {"two"}, {"three"}, {"four"}} {
		res, err := runSave(cfg, target, lines, false)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != gate.Saved {
			t.Fatalf("outside a repo every save goes through, got %v", res.Status)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, ".commitgate", "state.json")); !os.IsNotExist(err) {
		t.Error("no state file should be written outside a repository")
	}
}
