package modes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon/modality/internal/binding"
)

func render(t *testing.T, b *binding.Binder) string {
	t.Helper()
	var sb strings.Builder
	_, err := b.WriteTo(&sb)
	require.NoError(t, err)
	return sb.String()
}

func TestNames(t *testing.T) {
	s := Build(Options{Batch: true, Self: "modality"}, nil)
	assert.Equal(t, []string{"command", "default", "empty", "insert"}, s.Names())
}

func TestGetUnknownMode(t *testing.T) {
	s := Build(Options{Batch: true, Self: "modality"}, nil)

	_, err := s.Get("visual")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Contains(t, err.Error(), `"visual"`)
	assert.Contains(t, err.Error(), "command, default, empty, insert")

	_, err = s.Switch("insert", "visual")
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Contains(t, err.Error(), "prior mode")
}

func TestCommandModeDisablesUnboundKeys(t *testing.T) {
	s := Build(Options{Batch: true, Self: "modality"}, nil)
	b, err := s.Get(Command)
	require.NoError(t, err)

	y, ok := b.Lookup("y")
	require.True(t, ok)
	assert.True(t, y.Disabled)

	j, ok := b.Lookup("j")
	require.True(t, ok)
	assert.Equal(t, []string{"select-pane", "-D"}, j.Command)

	c, ok := b.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, []string{"new-window"}, c.Command)
}

func TestCommandModePassThrough(t *testing.T) {
	s := Build(Options{Batch: true, PassThrough: true, Self: "modality"}, nil)
	b, err := s.Get(Command)
	require.NoError(t, err)

	c, ok := b.Lookup("c")
	require.True(t, ok)
	assert.True(t, c.Disabled)

	def, err := s.Get(Default)
	require.NoError(t, err)
	want, _ := def.Command("c")
	assert.Equal(t, want, c.Effective(def))

	out := render(t, b)
	assert.Contains(t, out, `bind-key -n "c" new-window`+"\n")
	assert.Contains(t, out, `bind-key -n "y" display-message "Unrecognized input."`+"\n")
}

func TestSwitchCommand(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"plain", Options{Batch: true, Self: "/bin/modality"}, "/bin/modality -p command insert"},
		{"all flags", Options{PassThrough: true, Color: true, Self: "m"}, "m -t -c -n -p command insert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, switchCommand(tt.opts, Insert, Command))
		})
	}

	// Leaving insert mode does not force pass-through on.
	assert.Equal(t, "m -p insert command", switchCommand(Options{Batch: true, Self: "m"}, Command, Insert))
	assert.Equal(t, "m -t -p insert command",
		switchCommand(Options{Batch: true, PassThrough: true, Self: "m"}, Command, Insert))
}

func TestInsertToCommandSwitch(t *testing.T) {
	s := Build(Options{Batch: true, Self: "modality"}, nil)
	b, err := s.Switch(Insert, Command)
	require.NoError(t, err)

	out := render(t, b)
	assert.Contains(t, out, `bind-key -n "C-\\" run-shell "modality -p insert command"`+"\n")
	assert.Contains(t, out, `unbind-key -n "j"`+"\n")
	assert.NotContains(t, out, "set-option")
}

func TestColors(t *testing.T) {
	s := Build(Options{
		Batch:  true,
		Color:  true,
		Self:   "modality",
		Colors: map[string]map[string]string{Insert: {"status-bg": "colour1"}},
	}, nil)

	b, err := s.Get(Insert)
	require.NoError(t, err)
	out := render(t, b)
	assert.Contains(t, out, "set-option -q -g status-bg colour1\n")
	assert.NotContains(t, out, "colour24")

	b, err = s.Get(Command)
	require.NoError(t, err)
	assert.Contains(t, render(t, b), "set-option -q -g status-bg colour127\n")
}

func TestEmptyMode(t *testing.T) {
	s := Build(Options{Batch: true, Self: "modality"}, nil)
	b, err := s.Switch(Empty, Default)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Len())
	out := render(t, b)
	assert.Contains(t, out, `unbind-key "c"`+"\n")
	assert.NotContains(t, out, "bind-key -n")
}
