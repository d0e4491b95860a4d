package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/husi/advent-of-tdd/pkg/errors"
)

// Registry stores items under ordered keys. The zero key is reserved.
type Registry[K cmp.Ordered, T any] struct {
	mu    sync.RWMutex
	items map[K]T
}

// New creates an empty Registry
func New[K cmp.Ordered, T any]() *Registry[K, T] {
	return &Registry[K, T]{
		items: make(map[K]T),
	}
}

// Register adds an item under key
func (r *Registry[K, T]) Register(key K, item T) error {
	var zero K
	if key == zero {
		return errors.New(errors.ErrInvalidInput, "registry key cannot be the zero value")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%v' is already registered", key).
			WithDetail("key", key)
	}

	r.items[key] = item
	return nil
}

// Get retrieves the item registered under key
func (r *Registry[K, T]) Get(key K) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key).
			WithDetail("key", key)
	}

	return item, nil
}

// Keys returns all registered keys in ascending order
func (r *Registry[K, T]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}

// Values returns all items ordered by key
func (r *Registry[K, T]) Values() []T {
	keys := r.Keys()

	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]T, 0, len(keys))
	for _, key := range keys {
		if item, ok := r.items[key]; ok {
			values = append(values, item)
		}
	}
	return values
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[K cmp.Ordered, T any](reg *Registry[K, T], key K, item T) {
	if err := reg.Register(key, item); err != nil {
		panic(fmt.Sprintf("failed to register %v: %v", key, err))
	}
}
