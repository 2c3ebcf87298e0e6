package formatting

import (
	"fmt"
	"log/slog"
	"sort"
)

// Factory creates a fresh formatter for one run.
type Factory func() Formatter

// Registry maps formatter names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in formatters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("default", func() Formatter { return NewTemplateFormatter(DefaultTemplate) })
	r.Register("pylint", func() Formatter { return NewTemplateFormatter(PylintTemplate) })
	r.Register("quiet-filename", func() Formatter { return &FilenameFormatter{} })
	r.Register("quiet-nothing", func() Formatter { return NothingFormatter{} })
	return r
}

// Register adds a formatter. Registering a name twice is a programming error.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("formatter with name '%s' already registered", name))
	}
	slog.Debug("Registering formatter.", "name", name)
	r.factories[name] = f
}

// Lookup returns a new instance of the named formatter.
func (r *Registry) Lookup(name string) (Formatter, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
