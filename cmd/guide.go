package cmd

import (
	_ "embed"
	"fmt"

	"github.com/marcus/commitgate/internal/output"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:     "guide",
	Short:   "Show the commitgate guide",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := output.RenderMarkdown(guideMarkdown)
		if err != nil {
			// Fall back to the raw markdown on dumb terminals.
			fmt.Println(guideMarkdown)
			return nil
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
