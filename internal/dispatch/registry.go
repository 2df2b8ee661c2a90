package dispatch

// #region imports
import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// #endregion

// #region errors
var (
	// ErrUnknownPlatform is returned when a manifest names a platform no
	// adapter was registered for.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrAlreadyRegistered is returned when two adapters claim one name.
	ErrAlreadyRegistered = errors.New("platform already registered")
)

// #endregion errors

// #region registry

// Registry holds the platform adapters available to the engine.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under its own name.
func (r *Registry) Register(a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.adapters[name] = a
	return nil
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, name)
	}
	return a, nil
}

// Names returns the registered platform names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion registry
