package engine

import (
	"sync"

	"github.com/kestrelforge/lumen/component"
	"github.com/kestrelforge/lumen/core"
)

// World contains all entities and their components using typed stores.
// Stores are named fields rather than a reflective registry: the
// component set is closed, attachment is a checked insert keyed by the
// store, and systems reach components without runtime lookups.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Transforms   *Store[component.Transform]
	Renderables  *Store[component.Renderable]
	ShadowLights *Store[component.ShadowLight]
	PointLights  *Store[component.PointLight]
	Cameras      *Store[component.Camera]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Transforms:   NewStore[component.Transform](),
		Renderables:  NewStore[component.Renderable](),
		ShadowLights: NewStore[component.ShadowLight](),
		PointLights:  NewStore[component.PointLight](),
		Cameras:      NewStore[component.Camera](),
	}

	w.allStores = []AnyStore{
		w.Transforms,
		w.Renderables,
		w.ShadowLights,
		w.PointLights,
		w.Cameras,
	}

	return w
}

// CreateEntity allocates a unique entity id that already carries a
// default transform. Every later attachment may assume the transform
// is present.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	id := w.nextEntityID
	w.nextEntityID++
	w.mu.Unlock()

	// A fresh id cannot collide, the attach cannot fail
	t, _ := w.Transforms.Attach(id)
	*t = component.NewTransform()
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether the entity still holds any component. Entities
// always carry a transform, so a swept entity reports false.
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// EntityCount returns the number of live entities, which equals the
// number of transforms since every entity carries exactly one
func (w *World) EntityCount() int {
	return w.Transforms.Count()
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}
