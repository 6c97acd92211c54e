package binding

import "strings"

// DisabledCommand is bound to disabled keys that have no pass-through target.
var DisabledCommand = []string{"display-message", "Unrecognized input."}

// directEscapes are shell metacharacters escaped in keys passed on argv.
const directEscapes = ";><&|"

// Fallback resolves the command a disabled key passes through to.
// It is consulted once; the returned command is never resolved further.
type Fallback interface {
	Command(key string) ([]string, bool)
}

// Binding maps one key to a tmux command.
type Binding struct {
	Key       string
	Command   []string
	UsePrefix bool // key must follow the tmux prefix
	Disabled  bool
}

// New returns a root-table binding of key to command.
func New(key string, command ...string) Binding {
	return Binding{Key: key, Command: command}
}

// Clone returns a copy that shares no memory with b.
func (b Binding) Clone() Binding {
	c := b
	if b.Command != nil {
		c.Command = append([]string(nil), b.Command...)
	}
	return c
}

// Unbound returns a copy of b turned into a pure removal marker.
func (b Binding) Unbound() Binding {
	c := b.Clone()
	c.Command = nil
	c.Disabled = false
	return c
}

// Effective returns the command tmux should run for b. Disabled keys pass
// through to fb when it knows the key, otherwise they show DisabledCommand.
func (b Binding) Effective(fb Fallback) []string {
	if !b.Disabled {
		return b.Command
	}
	if fb != nil {
		if cmd, ok := fb.Command(b.Key); ok {
			return cmd
		}
	}
	return DisabledCommand
}

// DirectArgs renders b as bind-key arguments for a direct tmux invocation.
func DirectArgs(b Binding, fb Fallback) []string {
	var args []string
	if !b.UsePrefix {
		args = append(args, "-n")
	}

	var key strings.Builder
	for _, r := range b.Key {
		if strings.ContainsRune(directEscapes, r) {
			key.WriteByte('\\')
		}
		key.WriteRune(r)
	}
	args = append(args, key.String())

	return append(args, b.Effective(fb)...)
}

// ScriptArgs renders b as the bind-key arguments of a line in a script
// consumed by tmux source-file.
func ScriptArgs(b Binding, fb Fallback) []string {
	var args []string
	if !b.UsePrefix {
		args = append(args, "-n")
	}
	args = append(args, quoteKey(b.Key))

	for _, part := range b.Effective(fb) {
		if strings.Contains(part, " ") {
			part = `"` + part + `"`
		}
		args = append(args, part)
	}
	return args
}

// quoteKey quotes a key for a tmux config line. Unquoted semicolons would
// separate commands.
func quoteKey(key string) string {
	quote := `"`
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '"':
			quote = "'"
			b.WriteRune(r)
		case ';':
			b.WriteString(`\\;`)
		case '\\', '$':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return quote + b.String() + quote
}
