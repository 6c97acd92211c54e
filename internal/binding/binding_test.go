package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type table map[string][]string

func (t table) Command(key string) ([]string, bool) {
	cmd, ok := t[key]
	return cmd, ok
}

func TestEffective(t *testing.T) {
	defaults := table{"c": {"new-window"}}

	tests := []struct {
		name     string
		binding  Binding
		fallback Fallback
		want     []string
	}{
		{
			name:    "enabled returns own command",
			binding: New("x", "kill-pane"),
			want:    []string{"kill-pane"},
		},
		{
			name:     "enabled ignores fallback",
			binding:  New("c", "clock-mode"),
			fallback: defaults,
			want:     []string{"clock-mode"},
		},
		{
			name:    "disabled without fallback shows diagnostic",
			binding: Binding{Key: "c", Disabled: true},
			want:    DisabledCommand,
		},
		{
			name:     "disabled passes through to known key",
			binding:  Binding{Key: "c", Disabled: true},
			fallback: defaults,
			want:     []string{"new-window"},
		},
		{
			name:     "disabled unknown key shows diagnostic",
			binding:  Binding{Key: "z", Disabled: true},
			fallback: defaults,
			want:     DisabledCommand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.binding.Effective(tt.fallback))
		})
	}
}

func TestDirectArgs(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		want    []string
	}{
		{
			name:    "root table",
			binding: New("x", "kill-pane"),
			want:    []string{"-n", "x", "kill-pane"},
		},
		{
			name:    "prefix table",
			binding: Binding{Key: "q", Command: []string{"detach-client"}, UsePrefix: true},
			want:    []string{"q", "detach-client"},
		},
		{
			name:    "semicolon escaped",
			binding: New(";", "last-pane"),
			want:    []string{"-n", `\;`, "last-pane"},
		},
		{
			name:    "pipe and redirects escaped",
			binding: New("|", "split-window", "-h"),
			want:    []string{"-n", `\|`, "split-window", "-h"},
		},
		{
			name:    "tokens with spaces left alone",
			binding: New("x", "confirm-before", "-p", "kill-pane #P? (y/n)", "kill-pane"),
			want:    []string{"-n", "x", "confirm-before", "-p", "kill-pane #P? (y/n)", "kill-pane"},
		},
		{
			name:    "unbind marker",
			binding: New("a", "select-pane").Unbound(),
			want:    []string{"-n", "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectArgs(tt.binding, nil))
		})
	}

	for _, r := range "<>&" {
		got := DirectArgs(New(string(r)), nil)
		assert.Equal(t, []string{"-n", `\` + string(r)}, got)
	}
}

func TestScriptArgs(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		want    []string
	}{
		{
			name:    "root table",
			binding: New("x", "kill-pane"),
			want:    []string{"-n", `"x"`, "kill-pane"},
		},
		{
			name:    "prefix table",
			binding: Binding{Key: "q", Command: []string{"detach-client"}, UsePrefix: true},
			want:    []string{`"q"`, "detach-client"},
		},
		{
			name:    "semicolon",
			binding: New(";", "last-pane"),
			want:    []string{"-n", `"\\;"`, "last-pane"},
		},
		{
			name:    "dollar",
			binding: New("$"),
			want:    []string{"-n", `"\$"`},
		},
		{
			name:    "backslash",
			binding: New(`C-\`, "run-shell", "modality command"),
			want:    []string{"-n", `"C-\\"`, "run-shell", `"modality command"`},
		},
		{
			name:    "double quote uses single quotes",
			binding: New(`"`),
			want:    []string{"-n", `'"'`},
		},
		{
			name:    "only tokens with spaces are quoted",
			binding: New("$", "command-prompt", "-I", "'#S'", "rename-session '%%'"),
			want:    []string{"-n", `"\$"`, "command-prompt", "-I", "'#S'", `"rename-session '%%'"`},
		},
		{
			name:    "disabled",
			binding: Binding{Key: "z", Disabled: true},
			want:    []string{"-n", `"z"`, "display-message", `"Unrecognized input."`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScriptArgs(tt.binding, nil))
		})
	}
}

func TestSemicolonRenderingsDiffer(t *testing.T) {
	b := New(";")
	assert.Equal(t, `"\\;"`, ScriptArgs(b, nil)[1])
	assert.Equal(t, `\;`, DirectArgs(b, nil)[1])
}

func TestClone(t *testing.T) {
	orig := Binding{Key: "x", Command: []string{"kill-pane"}, UsePrefix: true, Disabled: true}
	c := orig.Clone()
	assert.Equal(t, orig, c)

	c.Command[0] = "kill-window"
	assert.Equal(t, "kill-pane", orig.Command[0])
}

func TestUnbound(t *testing.T) {
	orig := Binding{Key: "x", Command: []string{"kill-pane"}, UsePrefix: true, Disabled: true}
	u := orig.Unbound()

	assert.Equal(t, "x", u.Key)
	assert.Empty(t, u.Command)
	assert.False(t, u.Disabled)
	assert.True(t, u.UsePrefix)
	assert.Equal(t, []string{"kill-pane"}, orig.Command)
	assert.True(t, orig.Disabled)
}
