package tmux

// Executor abstracts tmux operations so they can run locally or over SSH.
type Executor interface {
	HostName() string
	// Run runs one tmux command and waits for it to exit.
	Run(args ...string) error
	// SourceFile has tmux execute every line of a local script.
	SourceFile(path string) error
}
