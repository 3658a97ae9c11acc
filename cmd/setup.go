package cmd

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/marcus/commitgate/internal/config"
	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:     "setup",
	Short:   "Interactive first-run configuration",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		writesNumber := strconv.Itoa(config.DefaultWritesNumber)
		mode := "event"
		intervalMinutes := "5"
		hardcore := false
		uselessCheck := true
		webhookURL := ""

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Write budget").
					Description("How many buffer writes before the nag kicks in").
					Value(&writesNumber).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n <= 0 {
							return errPositiveNumber
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("Evaluation mode").
					Options(
						huh.NewOption("Event-driven (evaluate on each save)", "event"),
						huh.NewOption("Interval (background timer)", "interval"),
					).
					Value(&mode),
				huh.NewInput().
					Title("Check interval (minutes)").
					Description("Only used in interval mode").
					Value(&intervalMinutes),
				huh.NewConfirm().
					Title("Hardcore mode").
					Description("Block writes entirely while the gate is locked").
					Value(&hardcore),
				huh.NewConfirm().
					Title("Nag on meaningless commit messages").
					Description(`Locks the gate after commits like "wip" or "fix"`).
					Value(&uselessCheck),
				huh.NewInput().
					Title("Webhook URL (optional)").
					Description("POST nags to this URL, empty to disable").
					Value(&webhookURL),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}

		f, err := config.LoadFile(getBaseDir())
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		n, _ := strconv.Atoi(writesNumber)
		f.WritesNumber = intPtr(n)
		f.PreventWrite = boolPtr(hardcore)
		f.StopOnUselessCommit = boolPtr(uselessCheck)
		if mode == "interval" {
			m, err := strconv.Atoi(intervalMinutes)
			if err != nil || m <= 0 {
				output.Error("invalid interval %q", intervalMinutes)
				return errPositiveNumber
			}
			f.CheckInterval = intPtr(m)
		} else {
			f.CheckInterval = intPtr(config.DefaultCheckInterval)
		}
		if webhookURL != "" {
			ensureWebhook(f)
			f.Notify.Webhook.URL = strPtr(webhookURL)
		}

		if err := config.Save(getBaseDir(), f); err != nil {
			output.Error("save config: %v", err)
			return err
		}

		output.Success("configuration written to .commitgate/config.json")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
