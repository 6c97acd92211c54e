package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simon/modality/internal/config"
	"github.com/simon/modality/internal/modes"
	"github.com/simon/modality/internal/tmux"
	"github.com/simon/modality/internal/tui"
)

// settings is everything a subcommand needs, resolved from flags and the
// config file.
type settings struct {
	opts     modes.Options
	logger   *log.Logger
	executor tmux.Executor
}

// loadSettings merges the config file under the flags of cmd. A flag wins
// only when it was set explicitly.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if flags.Changed("log-level") || level == "" {
		level, _ = flags.GetString("log-level")
	}
	logger, err := newLogger(level)
	if err != nil {
		return nil, err
	}

	noTemp := boolSetting(cmd, "no-temp", cfg.NoTempFile)
	opts := modes.Options{
		Batch:       !noTemp,
		PassThrough: boolSetting(cmd, "pass-through", cfg.PassThrough),
		Color:       boolSetting(cmd, "color", cfg.Color),
		Self:        selfCommand(cmd, cfg),
		Colors:      cfg.Colors,
	}

	host, _ := flags.GetString("host")
	tmuxBin := cfg.Tmux
	if flags.Changed("tmux") {
		tmuxBin, _ = flags.GetString("tmux")
	}
	executor, err := resolveExecutor(cfg, host, tmuxBin)
	if err != nil {
		return nil, err
	}

	return &settings{opts: opts, logger: logger, executor: executor}, nil
}

func boolSetting(cmd *cobra.Command, name string, fromConfig bool) bool {
	if !cmd.Flags().Changed(name) {
		return fromConfig
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// newLogger returns a stderr logger at the named level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "modality"})
	logger.SetLevel(lvl)
	return logger, nil
}

// selfCommand is the command line that mode-switch bindings run to invoke
// this binary again. With --host the bindings run on the remote tmux server,
// so local paths are never used there.
func selfCommand(cmd *cobra.Command, cfg *config.Config) string {
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		self := cfg.Hosts[host].Modality
		if self == "" {
			self = "modality"
		}
		return tmux.ShellQuote(self)
	}

	self, err := os.Executable()
	if err != nil {
		self = "modality"
	}
	parts := []string{tmux.ShellQuote(self)}
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config")
		parts = append(parts, "--config", tmux.ShellQuote(path))
	}
	return strings.Join(parts, " ")
}

// resolveExecutor returns an executor for the given host nickname.
// Empty host returns a LocalExecutor.
func resolveExecutor(cfg *config.Config, host, tmuxBin string) (tmux.Executor, error) {
	if host == "" {
		return &tmux.LocalExecutor{Bin: tmuxBin}, nil
	}

	h, ok := cfg.Hosts[host]
	if !ok {
		return nil, fmt.Errorf("host %q not found in config", host)
	}

	return &tmux.SSHExecutor{
		Nickname: host,
		Host:     h.Host,
		User:     h.User,
		SSHKey:   h.SSHKey,
		Tmux:     h.Tmux,
	}, nil
}

// describeModes summarizes every mode of set for display.
func describeModes(set *modes.Set) []tui.Item {
	var items []tui.Item
	for _, name := range set.Names() {
		b, _ := set.Get(name)
		it := tui.Item{Name: name}
		for _, key := range b.Keys() {
			bd, _ := b.Lookup(key)
			if bd.Disabled {
				it.Disabled++
			} else {
				it.Bound++
			}
		}
		items = append(items, it)
	}
	return items
}
