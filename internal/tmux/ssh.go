package tmux

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// SSHExecutor runs tmux commands on a remote host over SSH.
type SSHExecutor struct {
	Nickname string
	Host     string
	User     string
	SSHKey   string
	Tmux     string // remote tmux binary, "tmux" when empty
}

func (s *SSHExecutor) HostName() string { return s.Nickname }

func (s *SSHExecutor) sshArgs() []string {
	args := []string{
		"-o", "ControlMaster=auto",
		"-o", "ControlPath=/tmp/modality-ssh-%r@%h:%p",
		"-o", "ControlPersist=60",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if s.SSHKey != "" {
		args = append(args, "-i", s.SSHKey)
	}
	if s.User != "" {
		args = append(args, fmt.Sprintf("%s@%s", s.User, s.Host))
	} else {
		args = append(args, s.Host)
	}
	return args
}

// remoteCommand builds the shell command line that runs tmux with args on
// the remote host. Every argument is quoted, so keys like ";" and "|" reach
// tmux intact.
func (s *SSHExecutor) remoteCommand(args ...string) string {
	bin := s.Tmux
	if bin == "" {
		bin = "tmux"
	}
	parts := []string{bin}
	for _, a := range args {
		parts = append(parts, ShellQuote(a))
	}
	return strings.Join(parts, " ")
}

func (s *SSHExecutor) run(stdin io.Reader, args ...string) error {
	sshArgs := append(s.sshArgs(), s.remoteCommand(args...))
	cmd := exec.Command("ssh", sshArgs...)
	cmd.Stdin = stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.Nickname, wrapError(err, stderr.String(), args))
	}
	return nil
}

func (s *SSHExecutor) Run(args ...string) error {
	return s.run(nil, args...)
}

// SourceFile streams the local script to "source-file -" on the remote host.
func (s *SSHExecutor) SourceFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.run(f, "source-file", "-")
}

// ShellQuote wraps a string in single quotes, escaping any single quotes inside.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
