package modes

import (
	"fmt"

	"github.com/simon/modality/internal/binding"
)

var commandColors = map[string]string{
	"pane-active-border-bg": "colour16",
	"pane-active-border-fg": "colour127",
	"pane-border-bg":        "colour16",
	"pane-border-fg":        "colour127",
	"status-bg":             "colour127",
	"status-fg":             "colour225",
}

var insertColors = map[string]string{
	"pane-active-border-bg": "colour16",
	"pane-active-border-fg": "colour24",
	"pane-border-bg":        "colour16",
	"pane-border-fg":        "colour24",
	"status-bg":             "colour24",
	"status-fg":             "colour230",
}

// defineDefault binds the stock tmux prefix table.
func defineDefault(b *binding.Binder) {
	b.BindPrefix("C-b", "send-prefix")
	b.BindPrefix("C-o", "rotate-window")
	b.BindPrefix("C-z", "suspend-client")
	b.BindPrefix("Space", "next-layout")
	b.BindPrefix("!", "break-pane")
	b.BindPrefix(`"`, "split-window")
	b.BindPrefix("#", "list-buffers")
	b.BindPrefix("$", "command-prompt", "-I", "'#S'", "rename-session '%%'")
	b.BindPrefix("%", "split-window", "-h")
	b.BindPrefix("&", "confirm-before", "-p", "kill-window #W? (y/n)", "kill-window")
	b.BindPrefix("'", "command-prompt", "-p", "index", "select-window -t ':%%'")
	b.BindPrefix("(", "switch-client", "-p")
	b.BindPrefix(")", "switch-client", "-n")
	b.BindPrefix(",", "command-prompt", "-I", "'#W'", "rename-window '%%'")
	b.BindPrefix("-", "delete-buffer")
	b.BindPrefix(".", "command-prompt", "move-window -t '%%'")
	for i := 0; i <= 9; i++ {
		b.BindPrefix(fmt.Sprint(i), "select-window", fmt.Sprintf("-t :%d", i))
	}
	b.BindPrefix(":", "command-prompt")
	b.BindPrefix(";", "last-pane")
	b.BindPrefix("=", "choose-buffer")
	b.BindPrefix("?", "list-keys")
	b.BindPrefix("D", "choose-client")
	b.BindPrefix("L", "switch-client", "-l")
	b.BindPrefix("[", "copy-mode")
	b.BindPrefix("]", "paste-buffer")
	b.BindPrefix("c", "new-window")
	b.BindPrefix("d", "detach-client")
	b.BindPrefix("f", "command-prompt", "find-window '%%'")
	b.BindPrefix("i", "display-message")
	b.BindPrefix("l", "last-window")
	b.BindPrefix("n", "next-window")
	b.BindPrefix("o", "select-pane", "-t", ":.+")
	b.BindPrefix("p", "previous-window")
	b.BindPrefix("q", "display-panes")
	b.BindPrefix("r", "refresh-client")
	b.BindPrefix("s", "choose-session")
	b.BindPrefix("t", "clock-mode")
	b.BindPrefix("w", "choose-window")
	b.BindPrefix("x", "confirm-before", "-p", "kill-pane #P? (y/n)", "kill-pane")
	b.BindPrefix("{", "swap-pane", "-U")
	b.BindPrefix("}", "swap-pane", "-D")
	b.BindPrefix("~", "show-messages")
	b.BindPrefix("PPage", "copy-mode", "-u")
	// Arrow and resize bindings would need -r (repeat).
	b.BindPrefix("Up", "select-pane", "-U")
	b.BindPrefix("Down", "select-pane", "-D")
	b.BindPrefix("Left", "select-pane", "-L")
	b.BindPrefix("Right", "select-pane", "-R")
	b.BindPrefix("M-1", "select-layout", "even-horizontal")
	b.BindPrefix("M-2", "select-layout", "even-vertical")
	b.BindPrefix("M-3", "select-layout", "main-horizontal")
	b.BindPrefix("M-4", "select-layout", "main-vertical")
	b.BindPrefix("M-5", "select-layout", "tiled")
	b.BindPrefix("M-n", "next-window", "-a")
	b.BindPrefix("M-o", "rotate-window", "-D")
	b.BindPrefix("M-p", "previous-window", "-a")
	b.BindPrefix("M-Up", "resize-pane", "-U", "5")
	b.BindPrefix("M-Down", "resize-pane", "-D", "5")
	b.BindPrefix("M-Left", "resize-pane", "-L", "5")
	b.BindPrefix("M-Right", "resize-pane", "-R", "5")
	b.BindPrefix("C-Up", "resize-pane", "-U")
	b.BindPrefix("C-Down", "resize-pane", "-D")
	b.BindPrefix("C-Left", "resize-pane", "-L")
	b.BindPrefix("C-Right", "resize-pane", "-R")
}

// defineCommand builds the vi-like command mode: every key is disabled
// unless bound below.
func defineCommand(b *binding.Binder, opts Options) {
	b.DisableAllKeys()

	// Without pass-through these stock bindings would be lost.
	if !opts.PassThrough {
		b.Bind("!", "break-pane")
		b.Bind("[", "copy-mode")
		b.Bind("{", "swap-pane", "-U")
		b.Bind("}", "swap-pane", "-D")
		b.Bind(":", "command-prompt")
		b.Bind("c", "new-window")
		b.Bind("o", "select-pane", "-t", ":.+")
		b.Bind("Space", "next-layout")
	}

	b.Bind("|", "split-window", "-h")
	b.Bind("-", "split-window", "-v")
	for i := 1; i <= 9; i++ {
		b.Bind(fmt.Sprint(i), "select-pane", "-t", fmt.Sprint(i))
		b.Bind(fmt.Sprintf("M-%d", i), "select-window", "-t", fmt.Sprintf(":%d", i))
	}
	b.Bind("0", "select-pane", "-t", "10")
	b.Bind("M-0", "select-window", "-t", ":10")
	b.Bind("n", "select-window", "-n")
	b.Bind("p", "select-window", "-p")
	b.Bind("t", "clock-mode")

	toInsert := switchCommand(opts, Insert, Command)
	b.Bind("a", "run-shell", toInsert)
	b.Bind("i", "run-shell", toInsert)
	b.Bind("h", "select-pane", "-L")
	b.Bind("H", "resize-pane", "-L", "1")
	b.Bind("j", "select-pane", "-D")
	b.Bind("J", "resize-pane", "-D", "1")
	b.Bind("k", "select-pane", "-U")
	b.Bind("K", "resize-pane", "-U", "1")
	b.Bind("l", "select-pane", "-R")
	b.Bind("L", "resize-pane", "-R", "1")
	b.Bind("q", "detach-client")
	b.Bind("x", "confirm-before", "-p", "kill-pane #P? (y/n)", "kill-pane")
	b.Bind("Z", "confirm-before", "-p", "kill-window #W? (y/n)", "kill-window")
	b.Bind("Down", "select-pane", "-D")
	b.Bind("Left", "select-pane", "-L")
	b.Bind("Right", "select-pane", "-R")
	b.Bind("Up", "select-pane", "-U")

	if opts.Color {
		b.SetColors(colors(opts, Command, commandColors))
	}
}

// defineInsert leaves every key to the terminal except the escape back to
// command mode.
func defineInsert(b *binding.Binder, opts Options) {
	b.Bind(`C-\`, "run-shell", switchCommand(opts, Command, Insert))

	if opts.Color {
		b.SetColors(colors(opts, Insert, insertColors))
	}
}
