package cmd

import (
	"strings"
	"testing"

	"github.com/marcus/commitgate/internal/config"
)

// useTempBase points the command layer at a throwaway base dir.
func useTempBase(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	oldBase, oldWork := baseDir, workDir
	baseDir = dir
	workDir = dir
	t.Cleanup(func() {
		baseDir = oldBase
		workDir = oldWork
	})
	return dir
}

func TestConfigSetRoundTrip(t *testing.T) {
	dir := useTempBase(t)

	if err := configSetCmd.RunE(configSetCmd, []string{"writes_number", "10"}); err != nil {
		t.Fatalf("set writes_number: %v", err)
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"prevent_write", "true"}); err != nil {
		t.Fatalf("set prevent_write: %v", err)
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"message", "commit already"}); err != nil {
		t.Fatalf("set message: %v", err)
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"notify.debounce_ms", "250"}); err != nil {
		t.Fatalf("set notify.debounce_ms: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WritesNumber != 10 {
		t.Errorf("writes_number = %d, want 10", cfg.WritesNumber)
	}
	if !cfg.PreventWrite {
		t.Error("prevent_write not persisted")
	}
	if cfg.Message != "commit already" {
		t.Errorf("message = %q", cfg.Message)
	}
	if cfg.Notify.DebounceMS != 250 {
		t.Errorf("debounce_ms = %d, want 250", cfg.Notify.DebounceMS)
	}
	// Untouched keys keep their defaults.
	if cfg.MessageWritePrevent != config.DefaultMessageWritePrevent {
		t.Errorf("message_write_prevent should stay default, got %q", cfg.MessageWritePrevent)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	useTempBase(t)

	err := configSetCmd.RunE(configSetCmd, []string{"no_such_key", "1"})
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Fatalf("expected unknown-key error, got %v", err)
	}
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	dir := useTempBase(t)

	if err := configSetCmd.RunE(configSetCmd, []string{"writes_number", "0"}); err == nil {
		t.Error("writes_number 0 should fail validation")
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"check_interval", "-5"}); err == nil {
		t.Error("check_interval -5 should fail validation")
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"prevent_write", "maybe"}); err == nil {
		t.Error("non-bool prevent_write should be rejected")
	}

	// Nothing invalid was persisted.
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WritesNumber != config.DefaultWritesNumber {
		t.Errorf("writes_number = %d, want default %d", cfg.WritesNumber, config.DefaultWritesNumber)
	}
}

func TestConfigGetKnownKeys(t *testing.T) {
	useTempBase(t)

	for _, key := range validConfigKeys {
		if err := configGetCmd.RunE(configGetCmd, []string{key}); err != nil {
			t.Errorf("get %s: %v", key, err)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, val := range []string{"true", "TRUE", "1"} {
		got, err := parseBool(val)
		if err != nil || !got {
			t.Errorf("parseBool(%q) = %v, %v", val, got, err)
		}
	}
	for _, val := range []string{"false", "0"} {
		got, err := parseBool(val)
		if err != nil || got {
			t.Errorf("parseBool(%q) = %v, %v", val, got, err)
		}
	}
	if _, err := parseBool("yes"); err == nil {
		t.Error("parseBool(\"yes\") should error")
	}
}
