package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/modality/internal/modes"
	"github.com/simon/modality/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and their key counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		fmt.Print(tui.Table(describeModes(modes.Build(s.opts, s.logger)), -1))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
