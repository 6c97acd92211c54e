package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/simon/modality/internal/modes"
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:   "modality <mode>",
	Short: "Vi-like modal key bindings for tmux",
	Long: `Generates tmux key bindings for a mode (command, default, empty, insert)
and applies them, or writes them to a script with -o.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		prior, _ := cmd.Flags().GetString("prior")
		output, _ := cmd.Flags().GetString("output")

		return apply(s, args[0], prior, output)
	},
}

// apply switches to mode, writing the script to output instead when set.
func apply(s *settings, mode, prior, output string) error {
	set := modes.Build(s.opts, s.logger)
	binder, err := set.Switch(mode, prior)
	if err != nil {
		return err
	}

	if output != "" {
		s.logger.Info("writing script", "mode", mode, "prior", prior, "file", output)
		if err := binder.Write(output); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		return nil
	}

	s.logger.Info("applying mode", "mode", mode, "prior", prior,
		"batch", binder.Batch(), "host", s.executor.HostName())
	if err := binder.Execute(s.executor); err != nil {
		return fmt.Errorf("failed to apply mode %q: %w", mode, err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSettingsFlags registers the flags loadSettings reads.
func addSettingsFlags(fs *pflag.FlagSet) {
	fs.BoolP("pass-through", "t", false, "Enable pass-through to tmux defaults")
	fs.BoolP("color", "c", false, "Change colors with mode")
	fs.BoolP("no-temp", "n", false, "Disable use of a temp file (may be slower)")
	fs.String("host", "", "Apply on a host from the config file over SSH")
	fs.String("tmux", "", "Path to the tmux binary")
	fs.String("config", "", "Path to config file (default ~/.config/modality/config.yaml)")
	fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func init() {
	addSettingsFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringP("prior", "p", "", "Name of prior mode")
	rootCmd.Flags().StringP("output", "o", "", "Output script to the given file")
}
