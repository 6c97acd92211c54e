package binding

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/simon/modality/internal/tmux"
)

const (
	bindVerb   = "bind-key"
	unbindVerb = "unbind-key"
)

// Logger is the subset of charmbracelet/log used by Binder.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type discard struct{}

func (discard) Debug(interface{}, ...interface{}) {}

// Binder holds the bindings and unbindings of one mode.
type Binder struct {
	bound    map[string]Binding
	unbound  map[string]Binding
	extra    [][]string
	batch    bool
	fallback Fallback
	logger   Logger
}

type Option func(*Binder)

// WithFallback makes disabled keys pass through to fb.
func WithFallback(fb Fallback) Option {
	return func(b *Binder) { b.fallback = fb }
}

func WithLogger(l Logger) Option {
	return func(b *Binder) { b.logger = l }
}

// NewBinder returns an empty Binder. With batch set, Execute sources one
// script instead of running tmux once per command.
func NewBinder(batch bool, opts ...Option) *Binder {
	b := &Binder{
		bound:   make(map[string]Binding),
		unbound: make(map[string]Binding),
		batch:   batch,
		logger:  discard{},
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Put binds bd.Key to bd, replacing any earlier binding of the key.
func (b *Binder) Put(bd Binding) {
	b.bound[bd.Key] = bd.Clone()
}

// Bind binds key in the root table.
func (b *Binder) Bind(key string, command ...string) {
	b.Put(Binding{Key: key, Command: command})
}

// BindPrefix binds key in the prefix table.
func (b *Binder) BindPrefix(key string, command ...string) {
	b.Put(Binding{Key: key, Command: command, UsePrefix: true})
}

// Disable binds key to the disabled command.
func (b *Binder) Disable(key string) {
	b.Put(Binding{Key: key, Disabled: true})
}

// Unbind requests removal of key.
func (b *Binder) Unbind(key string, usePrefix bool) {
	b.unbound[key] = Binding{Key: key, UsePrefix: usePrefix}
}

// DisableAllKeys disables every key in SingleKeys and SpecialKeys. Later
// binds override the baseline.
func (b *Binder) DisableAllKeys() {
	for _, r := range SingleKeys {
		b.Disable(string(r))
	}
	for _, key := range SpecialKeys {
		b.Disable(key)
	}
}

// AbsorbPriorMode unbinds every key bound by prior. Keys b binds itself
// still win when emitted.
func (b *Binder) AbsorbPriorMode(prior *Binder) {
	for key, bd := range prior.bound {
		b.unbound[key] = bd.Unbound()
	}
}

// AddCommand appends a raw tmux command emitted after all bindings.
func (b *Binder) AddCommand(command ...string) {
	b.extra = append(b.extra, slices.Clone(command))
}

// SetColors adds a global set-option command per entry of colors.
func (b *Binder) SetColors(colors map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		b.AddCommand("set-option", "-q", "-g", name, colors[name])
	}
}

// Command returns the command bound to key. It lets a Binder serve as the
// pass-through target of other modes.
func (b *Binder) Command(key string) ([]string, bool) {
	bd, ok := b.bound[key]
	if !ok {
		return nil, false
	}
	return bd.Command, true
}

// Lookup returns a copy of the binding of key.
func (b *Binder) Lookup(key string) (Binding, bool) {
	bd, ok := b.bound[key]
	return bd.Clone(), ok
}

// Unbinding returns a copy of the removal marker for key.
func (b *Binder) Unbinding(key string) (Binding, bool) {
	bd, ok := b.unbound[key]
	return bd.Clone(), ok
}

// Keys returns the bound keys in sorted order.
func (b *Binder) Keys() []string {
	return slices.Sorted(maps.Keys(b.bound))
}

// Len returns the number of bound keys.
func (b *Binder) Len() int { return len(b.bound) }

// Batch reports whether Execute sources a script.
func (b *Binder) Batch() bool { return b.batch }

type sink interface {
	binding(verb string, bd Binding) error
	command(cmd []string) error
}

func (b *Binder) emit(s sink) error {
	for _, key := range slices.Sorted(maps.Keys(b.bound)) {
		if err := s.binding(bindVerb, b.bound[key]); err != nil {
			return err
		}
	}
	for _, key := range slices.Sorted(maps.Keys(b.unbound)) {
		if _, ok := b.bound[key]; ok {
			continue
		}
		if err := s.binding(unbindVerb, b.unbound[key]); err != nil {
			return err
		}
	}
	for _, cmd := range b.extra {
		if err := s.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// scriptSink writes one line per command, in tmux config syntax.
type scriptSink struct {
	w      io.Writer
	fb     Fallback
	logger Logger
	n      int64
}

func (s *scriptSink) line(line string) error {
	s.logger.Debug("emit", "line", line)
	n, err := io.WriteString(s.w, line+"\n")
	s.n += int64(n)
	return err
}

func (s *scriptSink) binding(verb string, bd Binding) error {
	return s.line(verb + " " + strings.Join(ScriptArgs(bd, s.fb), " "))
}

func (s *scriptSink) command(cmd []string) error {
	return s.line(strings.Join(cmd, " "))
}

// directSink runs tmux once per command.
type directSink struct {
	ex     tmux.Executor
	fb     Fallback
	logger Logger
}

func (s *directSink) run(args []string) error {
	s.logger.Debug("run", "host", s.ex.HostName(), "args", args)
	return s.ex.Run(args...)
}

func (s *directSink) binding(verb string, bd Binding) error {
	return s.run(append([]string{verb}, DirectArgs(bd, s.fb)...))
}

func (s *directSink) command(cmd []string) error {
	return s.run(cmd)
}

// WriteTo writes the script form of b to w.
func (b *Binder) WriteTo(w io.Writer) (int64, error) {
	s := &scriptSink{w: w, fb: b.fallback, logger: b.logger}
	err := b.emit(s)
	return s.n, err
}

// Write writes the script form of b to filename without running tmux.
func (b *Binder) Write(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

// Execute applies b through ex. In batch mode the script goes to a temporary
// file that is sourced once and then removed, whether or not sourcing worked.
func (b *Binder) Execute(ex tmux.Executor) error {
	if !b.batch {
		return b.emit(&directSink{ex: ex, fb: b.fallback, logger: b.logger})
	}

	f, err := os.CreateTemp("", "modality-*.conf")
	if err != nil {
		return fmt.Errorf("creating script: %w", err)
	}
	path := f.Name()
	b.logger.Debug("script", "path", path)

	_, err = b.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("writing script: %w", err)
	} else {
		err = ex.SourceFile(path)
	}

	if rerr := os.Remove(path); rerr != nil {
		err = errors.Join(err, fmt.Errorf("removing script: %w", rerr))
	}
	return err
}
