package dispatcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/edictdev/edict/internal/command"
	"github.com/edictdev/edict/internal/editor"
)

// Factory constructs a command from validated arguments.
// Argument count has already been checked against Spec.MinArgs.
type Factory func(ed *editor.Editor, args []string) command.Command

// Spec describes one registered command word.
type Spec struct {
	// Name is the command word the user types.
	Name string

	// Usage is a one-line usage string, e.g. "saveas <newpath>".
	Usage string

	// MinArgs is the number of required arguments.
	MinArgs int

	// Factory builds the command.
	Factory Factory
}

// Registry maps command words to specs.
// Registering a factory per word keeps the command set open for
// extension without touching the dispatch path.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds a spec. Words are unique.
func (r *Registry) Register(spec Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, spec.Name)
	}
	r.specs[spec.Name] = spec
	return nil
}

// Lookup returns the spec for a command word.
func (r *Registry) Lookup(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[name]
	return spec, ok
}

// Has returns true if a command word is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specs[name]
	return ok
}

// Names returns all registered command words, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usages returns the usage strings of all registered commands, sorted
// by command word.
func (r *Registry) Usages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)

	usages := make([]string, len(names))
	for i, name := range names {
		usages[i] = r.specs[name].Usage
	}
	return usages
}

// Count returns the number of registered command words.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}
