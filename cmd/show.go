package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/simon/modality/internal/modes"
)

var showCmd = &cobra.Command{
	Use:   "show <mode>",
	Short: "Print the script a mode switch would source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		prior, _ := cmd.Flags().GetString("prior")

		binder, err := modes.Build(s.opts, s.logger).Switch(args[0], prior)
		if err != nil {
			return err
		}
		_, err = binder.WriteTo(os.Stdout)
		return err
	},
}

func init() {
	showCmd.Flags().StringP("prior", "p", "", "Name of prior mode")
	rootCmd.AddCommand(showCmd)
}
