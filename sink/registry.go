// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"io"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/moshez/turtget"
)

// Options carries the settings a sink factory may need. Each factory reads
// only the fields relevant to it.
type Options struct {
	// Writer receives rendered output (html, ascii).
	Writer io.Writer

	// Path is the output file (png).
	Path string

	// Columns is the text width (ascii).
	Columns int

	// Screen is an initialized screen to draw on (terminal). If nil, the
	// terminal factory opens the controlling terminal.
	Screen tcell.Screen
}

// Factory creates a sink from options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (turtget.Sink, error)

// RegistryEntry represents a registered sink.
type RegistryEntry struct {
	// Name is the unique identifier for this sink.
	Name string

	// Description is a one-line summary shown by the CLI.
	Description string

	// Factory creates sink instances.
	Factory Factory
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages named sinks.
//
// Example registration:
//
//	func init() {
//	    sink.Register("svgish", "my sink", mySinkFactory)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a sink to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name, description string, factory Factory) {
	globalRegistry.Register(name, description, factory)
}

// Unregister removes a sink from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered sink names, sorted.
func List() []string {
	return globalRegistry.List()
}

// Get returns information about a specific sink.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// New creates a sink using the named factory from the global registry.
func New(name string, opts Options) (turtget.Sink, error) {
	return globalRegistry.New(name, opts)
}

// Register adds a sink to this registry.
func (r *Registry) Register(name, description string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{
		Name:        name,
		Description: description,
		Factory:     factory,
	}
}

// Unregister removes a sink from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered sink names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns information about a specific sink.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a sink using the named factory.
func (r *Registry) New(name string, opts Options) (turtget.Sink, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	s, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}
	turtget.Logger().Info("sink: created", "name", name)
	return s, nil
}

// NotFoundError indicates a named sink is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "sink: not found: " + e.Name
}

// init registers the built-in sinks.
func init() {
	Register("memory", "keep the last frame in memory", func(Options) (turtget.Sink, error) {
		return turtget.NewMemorySink(), nil
	})
	Register("html", "<img> element with a base64 PNG data URI", func(opts Options) (turtget.Sink, error) {
		return NewHTML(opts.Writer), nil
	})
	Register("png", "PNG file rewritten on every frame", func(opts Options) (turtget.Sink, error) {
		p, err := NewPNGFile(opts.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	Register("ascii", "luminance characters", func(opts Options) (turtget.Sink, error) {
		return NewASCII(opts.Writer, opts.Columns), nil
	})
	Register("terminal", "half-block cells on a terminal screen", func(opts Options) (turtget.Sink, error) {
		if opts.Screen != nil {
			return NewTerminal(opts.Screen), nil
		}
		t, err := OpenTerminal()
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}
