package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoServer is returned when no tmux server is reachable.
var ErrNoServer = errors.New("no tmux server running")

// FindTmux locates the tmux binary.
func FindTmux() (string, error) {
	return exec.LookPath("tmux")
}

// runCommand runs bin with args, returning stdout. Failures carry stderr.
func runCommand(bin string, args ...string) (string, error) {
	cmd := exec.Command(bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", wrapError(err, stderr.String(), args)
	}
	return stdout.String(), nil
}

// wrapError wraps a failed tmux invocation with its subcommand and stderr.
func wrapError(err error, stderr string, args []string) error {
	stderr = strings.TrimSpace(stderr)

	if strings.Contains(stderr, "no server running") ||
		strings.Contains(stderr, "error connecting to") {
		return fmt.Errorf("%w: %s", ErrNoServer, stderr)
	}

	name := "tmux"
	if len(args) > 0 {
		name += " " + args[0]
	}
	if stderr != "" {
		return fmt.Errorf("%s: %s: %w", name, stderr, err)
	}
	return fmt.Errorf("%s: %w", name, err)
}
