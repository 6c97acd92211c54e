package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simon/modality/internal/modes"
	"github.com/simon/modality/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a mode interactively and apply it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		prior, _ := cmd.Flags().GetString("prior")

		items := describeModes(modes.Build(s.opts, s.logger))
		finalModel, err := tea.NewProgram(tui.NewModel(items, prior)).Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		final := finalModel.(tui.Model)
		if final.Selected == "" {
			return nil
		}
		return apply(s, final.Selected, prior, "")
	},
}

func init() {
	pickCmd.Flags().StringP("prior", "p", "", "Name of the mode currently active")
	rootCmd.AddCommand(pickCmd)
}
