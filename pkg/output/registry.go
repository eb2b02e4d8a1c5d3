package output

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-formextras/pkg/preview"
)

// Registry stores writers by name.
type Registry struct {
	mu      sync.RWMutex
	writers map[string]Writer
}

func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]Writer),
	}
}

// NewDefaultRegistry registers the table, json and html writers. options
// configure the html preview.
func NewDefaultRegistry(options ...preview.Option) *Registry {
	r := NewRegistry()
	r.MustRegister(TableWriter{})
	r.MustRegister(JSONWriter{Indent: "  "})
	r.MustRegister(HTMLWriter{Renderer: preview.New(options...)})
	return r
}

// Register adds a writer by its Name(). Duplicate names return an error.
func (r *Registry) Register(writer Writer) error {
	if writer == nil {
		return fmt.Errorf("output: writer is required")
	}
	name := writer.Name()
	if name == "" {
		return fmt.Errorf("output: writer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.writers[name]; exists {
		return fmt.Errorf("output: writer %q already registered", name)
	}
	r.writers[name] = writer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(writer Writer) {
	if err := r.Register(writer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Writer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	writer, ok := r.writers[name]
	if !ok {
		return nil, fmt.Errorf("output: writer %q not found", name)
	}
	return writer, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.writers[name]
	return ok
}
