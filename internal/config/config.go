// Package config loads and validates the commitgate configuration: documented
// defaults overlaid with the values found in .commitgate/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFile = ".commitgate/config.json"

// Defaults for every recognized option.
const (
	DefaultMessage              = "You have uncommitted changes, time to commit!"
	DefaultMessageWritePrevent  = "Too many writes without a commit. Commit before writing again"
	DefaultMessageUselessCommit = "Last commit message is meaningless. Amend it with something useful"
	DefaultWritesNumber         = 30
	DefaultCheckInterval        = -1 // event-driven mode
	DefaultDebounceMS           = 500
)

// Config is the effective configuration after merging. Every field has a
// defined value; it is not mutated after setup.
type Config struct {
	Message              string
	MessageWritePrevent  string
	MessageUselessCommit string
	PreventWrite         bool
	StopOnUselessCommit  bool
	WritesNumber         int
	CheckInterval        int // minutes; -1 selects event-driven mode
	Notify               Notify
}

// Notify groups the notification options.
type Notify struct {
	DebounceMS int
	Webhook    Webhook
}

// Webhook configures the optional webhook notification sink.
type Webhook struct {
	URL    string
	Secret string
}

// File is the on-disk shape of the config. Pointer fields distinguish "key
// absent" from an explicit zero value, so the overlay only touches keys the
// user actually set. Unknown keys are dropped by the JSON decoder.
type File struct {
	Message              *string     `json:"message,omitempty"`
	MessageWritePrevent  *string     `json:"message_write_prevent,omitempty"`
	MessageUselessCommit *string     `json:"message_useless_commit,omitempty"`
	PreventWrite         *bool       `json:"prevent_write,omitempty"`
	StopOnWrite          *bool       `json:"stop_on_write,omitempty"` // legacy alias for prevent_write
	StopOnUselessCommit  *bool       `json:"stop_on_useless_commit,omitempty"`
	WritesNumber         *int        `json:"writes_number,omitempty"`
	CheckInterval        *int        `json:"check_interval,omitempty"`
	Notify               *NotifyFile `json:"notify,omitempty"`
}

// NotifyFile is the on-disk shape of the notify sub-table.
type NotifyFile struct {
	DebounceMS *int         `json:"debounce_ms,omitempty"`
	Webhook    *WebhookFile `json:"webhook,omitempty"`
}

// WebhookFile is the on-disk shape of the webhook sub-table.
type WebhookFile struct {
	URL    *string `json:"url,omitempty"`
	Secret *string `json:"secret,omitempty"`
}

// Default returns a Config with every field set to its documented default.
func Default() *Config {
	return &Config{
		Message:              DefaultMessage,
		MessageWritePrevent:  DefaultMessageWritePrevent,
		MessageUselessCommit: DefaultMessageUselessCommit,
		StopOnUselessCommit:  true,
		WritesNumber:         DefaultWritesNumber,
		CheckInterval:        DefaultCheckInterval,
		Notify: Notify{
			DebounceMS: DefaultDebounceMS,
		},
	}
}

// Overlay applies the file's set keys onto cfg, key-wise. Sub-tables are
// merged, not replaced. The user's value wins at every level.
func (f *File) Overlay(cfg *Config) {
	if f == nil {
		return
	}
	if f.Message != nil {
		cfg.Message = *f.Message
	}
	if f.MessageWritePrevent != nil {
		cfg.MessageWritePrevent = *f.MessageWritePrevent
	}
	if f.MessageUselessCommit != nil {
		cfg.MessageUselessCommit = *f.MessageUselessCommit
	}
	// prevent_write wins over the legacy stop_on_write spelling when both
	// are present.
	if f.StopOnWrite != nil {
		cfg.PreventWrite = *f.StopOnWrite
	}
	if f.PreventWrite != nil {
		cfg.PreventWrite = *f.PreventWrite
	}
	if f.StopOnUselessCommit != nil {
		cfg.StopOnUselessCommit = *f.StopOnUselessCommit
	}
	if f.WritesNumber != nil {
		cfg.WritesNumber = *f.WritesNumber
	}
	if f.CheckInterval != nil {
		cfg.CheckInterval = *f.CheckInterval
	}
	if f.Notify != nil {
		if f.Notify.DebounceMS != nil {
			cfg.Notify.DebounceMS = *f.Notify.DebounceMS
		}
		if f.Notify.Webhook != nil {
			if f.Notify.Webhook.URL != nil {
				cfg.Notify.Webhook.URL = *f.Notify.Webhook.URL
			}
			if f.Notify.Webhook.Secret != nil {
				cfg.Notify.Webhook.Secret = *f.Notify.Webhook.Secret
			}
		}
	}
}

// Validate checks the merged config for values the gate cannot run with.
func (c *Config) Validate() error {
	if c.WritesNumber <= 0 {
		return fmt.Errorf("writes_number must be > 0, got %d", c.WritesNumber)
	}
	if c.CheckInterval != -1 && c.CheckInterval <= 0 {
		return fmt.Errorf("check_interval must be -1 (event-driven) or a positive number of minutes, got %d", c.CheckInterval)
	}
	if c.Notify.DebounceMS < 0 {
		return fmt.Errorf("notify.debounce_ms must be >= 0, got %d", c.Notify.DebounceMS)
	}
	return nil
}

// LoadFile reads the raw config file. A missing file is not an error and
// yields an empty File (all defaults survive the overlay).
func LoadFile(baseDir string) (*File, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return &f, nil
}

// Load builds the effective config: defaults, then the config file, then
// environment overrides for the webhook sink. The result is validated.
func Load(baseDir string) (*Config, error) {
	f, err := LoadFile(baseDir)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	f.Overlay(cfg)

	// Env wins over the file for webhook wiring (matches CI usage).
	if v := os.Getenv("COMMITGATE_WEBHOOK_URL"); v != "" {
		cfg.Notify.Webhook.URL = v
	}
	if v := os.Getenv("COMMITGATE_WEBHOOK_SECRET"); v != "" {
		cfg.Notify.Webhook.Secret = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file using an atomic write (temp file + rename).
func Save(baseDir string, f *File) error {
	configPath := filepath.Join(baseDir, configFile)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}
