package engine

import (
	"errors"
	"sync"

	"github.com/kestrelforge/lumen/core"
)

// ErrDuplicateComponent is returned when an entity already holds a
// component of the attached type. It signals a logic error in
// composition order.
var ErrDuplicateComponent = errors.New("engine: component type already attached to entity")

// AnyStore is the type-erased view every component store exposes for
// uniform entity lifecycle handling
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// Store is a generic container for a specific component type T.
// Uses sparse set pattern for cache-friendly iteration. Components are
// held by pointer so an attachment returns a mutable handle the caller
// initializes in place.
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]*T
	entities   []core.Entity // Entities that have this component, insertion order
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]*T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Attach inserts a zero-valued component for the entity and returns a
// mutable handle for immediate field initialization. Attaching a type
// the entity already holds fails with ErrDuplicateComponent.
func (s *Store[T]) Attach(e core.Entity) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		return nil, ErrDuplicateComponent
	}
	c := new(T)
	s.components[e] = c
	s.entities = append(s.entities, e)
	return c, nil
}

// AttachValue inserts a fully constructed component, with the same
// duplicate check as Attach
func (s *Store[T]) AttachValue(e core.Entity, val T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		return nil, ErrDuplicateComponent
	}
	c := &val
	s.components[e] = c
	s.entities = append(s.entities, e)
	return c, nil
}

// Get retrieves the component handle for an entity
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.components[e]
	return c, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Entities returns all entities with this component type
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]*T)
	s.entities = make([]core.Entity, 0, 64)
}
