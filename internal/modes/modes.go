// Package modes defines the modality key tables: default, command, insert
// and empty.
package modes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/simon/modality/internal/binding"
)

const (
	Default = "default"
	Command = "command"
	Insert  = "insert"
	Empty   = "empty"
)

// ErrUnknownMode is returned for a mode name with no key table.
var ErrUnknownMode = errors.New("unknown mode")

// Options configures how every mode is built.
type Options struct {
	// Batch applies a mode with one source-file instead of one tmux call per
	// binding.
	Batch bool
	// PassThrough makes disabled keys fall through to the default mode.
	PassThrough bool
	// Color switches tmux colors along with the mode.
	Color bool
	// Self is the command line bindings run to switch modes.
	Self string
	// Colors overrides the color table of a mode, keyed by mode name.
	Colors map[string]map[string]string
}

// Set holds the binders of every mode for one invocation.
type Set struct {
	binders map[string]*binding.Binder
}

// Build constructs every mode. The default mode is built first so that it
// can serve as the pass-through target of the others.
func Build(opts Options, logger binding.Logger) *Set {
	base := []binding.Option{}
	if logger != nil {
		base = append(base, binding.WithLogger(logger))
	}

	def := binding.NewBinder(opts.Batch, base...)
	defineDefault(def)

	others := base
	if opts.PassThrough {
		others = append(slices.Clone(base), binding.WithFallback(def))
	}

	s := &Set{binders: map[string]*binding.Binder{Default: def}}
	for name, define := range map[string]func(*binding.Binder, Options){
		Command: defineCommand,
		Insert:  defineInsert,
		Empty:   func(*binding.Binder, Options) {},
	} {
		b := binding.NewBinder(opts.Batch, others...)
		define(b, opts)
		s.binders[name] = b
	}
	return s
}

// Names returns the mode names in sorted order.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.binders))
}

// Get returns the binder of the named mode.
func (s *Set) Get(name string) (*binding.Binder, error) {
	b, ok := s.binders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownMode, name, strings.Join(s.Names(), ", "))
	}
	return b, nil
}

// Switch returns the binder of mode, first unbinding every key of prior
// when prior is not empty.
func (s *Set) Switch(mode, prior string) (*binding.Binder, error) {
	b, err := s.Get(mode)
	if err != nil {
		return nil, err
	}
	if prior == "" {
		return b, nil
	}
	p, err := s.Get(prior)
	if err != nil {
		return nil, fmt.Errorf("prior mode: %w", err)
	}
	b.AbsorbPriorMode(p)
	return b, nil
}

// switchCommand is the run-shell argument that moves from prior to mode.
func switchCommand(opts Options, mode, prior string) string {
	parts := []string{opts.Self}
	// -t follows the caller's setting on every switch, insert to command included.
	if opts.PassThrough {
		parts = append(parts, "-t")
	}
	if opts.Color {
		parts = append(parts, "-c")
	}
	if !opts.Batch {
		parts = append(parts, "-n")
	}
	parts = append(parts, "-p", prior, mode)
	return strings.Join(parts, " ")
}

func colors(opts Options, mode string, defaults map[string]string) map[string]string {
	if c, ok := opts.Colors[mode]; ok && len(c) > 0 {
		return c
	}
	return defaults
}
