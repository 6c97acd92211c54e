package tmux

import "fmt"

// LocalExecutor runs tmux commands on the local machine.
type LocalExecutor struct {
	// Bin is the tmux binary; empty means look it up on PATH.
	Bin string
}

func (l *LocalExecutor) HostName() string { return "" }

func (l *LocalExecutor) bin() (string, error) {
	if l.Bin != "" {
		return l.Bin, nil
	}
	bin, err := FindTmux()
	if err != nil {
		return "", fmt.Errorf("tmux not found: %w", err)
	}
	return bin, nil
}

func (l *LocalExecutor) Run(args ...string) error {
	bin, err := l.bin()
	if err != nil {
		return err
	}
	_, err = runCommand(bin, args...)
	return err
}

func (l *LocalExecutor) SourceFile(path string) error {
	return l.Run("source-file", path)
}
