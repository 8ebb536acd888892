package component

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the name Install uses when the caller gives none.
const DefaultName = "ClockFace"

var (
	ErrAlreadyRegistered = errors.New("component already registered")
	ErrNotRegistered     = errors.New("component not registered")
)

// Factory creates a fresh, unmounted clock component.
type Factory func() *Clock

// Registry is where a host application keeps its named components.
type Registry interface {
	Register(name string, factory Factory) error
}

// Install registers the clock component under name, or DefaultName when name
// is empty. Components created through the registry log with logger.
func Install(reg Registry, name string, logger Logger) error {
	if name == "" {
		name = DefaultName
	}
	return reg.Register(name, func() *Clock { return New(WithLogger(logger)) })
}

// MapRegistry is an in-memory Registry.
type MapRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{factories: map[string]Factory{}}
}

func (r *MapRegistry) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("register %q: nil factory", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrAlreadyRegistered)
	}
	r.factories[name] = factory
	return nil
}

func (r *MapRegistry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Create builds a new component from the factory registered under name.
func (r *MapRegistry) Create(name string) (*Clock, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("create %q: %w", name, ErrNotRegistered)
	}
	return f(), nil
}

// Names lists registered names in sorted order.
func (r *MapRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
