// Package cli is the command-dispatch framework: a registry of named
// handlers and a one-shot dispatcher that resolves and invokes exactly one
// command per process invocation.
package cli

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// SimpleHandler receives the raw argument tokens after the command name and
// does its own thing with them.
type SimpleHandler func(args []string) error

// SchemaCommand is the two-phase handler shape: Setup declares the argument
// schema, then the same instance is invoked with the parsed flag set.
type SchemaCommand interface {
	Setup() *pflag.FlagSet
	Run(fs *pflag.FlagSet) error
}

// SchemaFactory constructs a fresh SchemaCommand per dispatch.
type SchemaFactory func() SchemaCommand

// Descriptor is a registered command. Exactly one of Simple or Schema is
// set, fixed at registration time.
type Descriptor struct {
	Help   string
	Simple SimpleHandler
	Schema SchemaFactory
}

// Registry maps lowercase command names to descriptors. Registering the
// same name twice overwrites the earlier entry.
type Registry struct {
	handlers map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Descriptor)}
}

func (r *Registry) RegisterSimple(name, help string, handler SimpleHandler) {
	r.handlers[strings.ToLower(name)] = Descriptor{Help: help, Simple: handler}
}

func (r *Registry) RegisterSchema(name, help string, factory SchemaFactory) {
	r.handlers[strings.ToLower(name)] = Descriptor{Help: help, Schema: factory}
}

// Lookup resolves a command name case-insensitively.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.handlers[strings.ToLower(name)]
	return d, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
