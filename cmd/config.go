package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

// validConfigKeys lists the supported config keys for set/get.
var validConfigKeys = []string{
	"message",
	"message_write_prevent",
	"message_useless_commit",
	"prevent_write",
	"stop_on_useless_commit",
	"writes_number",
	"check_interval",
	"notify.debounce_ms",
	"notify.webhook.url",
	"notify.webhook.secret",
}

func isValidConfigKey(key string) bool {
	for _, k := range validConfigKeys {
		if k == key {
			return true
		}
	}
	return false
}

func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q (use true/false/1/0)", val)
	}
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage commitgate configuration",
	GroupID: "config",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		f, err := config.LoadFile(getBaseDir())
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		switch key {
		case "message":
			f.Message = strPtr(val)
		case "message_write_prevent":
			f.MessageWritePrevent = strPtr(val)
		case "message_useless_commit":
			f.MessageUselessCommit = strPtr(val)
		case "prevent_write":
			b, err := parseBool(val)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			f.PreventWrite = boolPtr(b)
		case "stop_on_useless_commit":
			b, err := parseBool(val)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			f.StopOnUselessCommit = boolPtr(b)
		case "writes_number", "check_interval", "notify.debounce_ms":
			n, err := strconv.Atoi(val)
			if err != nil {
				output.Error("invalid int value %q: %v", val, err)
				return fmt.Errorf("invalid int value %q: %w", val, err)
			}
			switch key {
			case "writes_number":
				f.WritesNumber = intPtr(n)
			case "check_interval":
				f.CheckInterval = intPtr(n)
			case "notify.debounce_ms":
				ensureNotify(f)
				f.Notify.DebounceMS = intPtr(n)
			}
		case "notify.webhook.url":
			ensureWebhook(f)
			f.Notify.Webhook.URL = strPtr(val)
		case "notify.webhook.secret":
			ensureWebhook(f)
			f.Notify.Webhook.Secret = strPtr(val)
		}

		// Reject values the gate cannot run with before persisting.
		merged := config.Default()
		f.Overlay(merged)
		if err := merged.Validate(); err != nil {
			output.Error("%v", err)
			return err
		}

		if err := config.Save(getBaseDir(), f); err != nil {
			output.Error("save config: %v", err)
			return err
		}

		output.Success("set %s = %s", key, val)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get an effective config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		var val string
		switch key {
		case "message":
			val = cfg.Message
		case "message_write_prevent":
			val = cfg.MessageWritePrevent
		case "message_useless_commit":
			val = cfg.MessageUselessCommit
		case "prevent_write":
			val = strconv.FormatBool(cfg.PreventWrite)
		case "stop_on_useless_commit":
			val = strconv.FormatBool(cfg.StopOnUselessCommit)
		case "writes_number":
			val = strconv.Itoa(cfg.WritesNumber)
		case "check_interval":
			val = strconv.Itoa(cfg.CheckInterval)
		case "notify.debounce_ms":
			val = strconv.Itoa(cfg.Notify.DebounceMS)
		case "notify.webhook.url":
			val = cfg.Notify.Webhook.URL
		case "notify.webhook.secret":
			val = cfg.Notify.Webhook.Secret
		}

		fmt.Println(val)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}
		return output.JSON(cfg)
	},
}

func ensureNotify(f *config.File) {
	if f.Notify == nil {
		f.Notify = &config.NotifyFile{}
	}
}

func ensureWebhook(f *config.File) {
	ensureNotify(f)
	if f.Notify.Webhook == nil {
		f.Notify.Webhook = &config.WebhookFile{}
	}
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
