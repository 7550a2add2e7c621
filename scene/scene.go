// Package scene assembles worlds declaratively: entity blocks, typed
// component attachment, behavior registration and derived GPU
// resources, composed in dependency order by a build script that runs
// once at startup.
package scene

import (
	"time"

	"github.com/kestrelforge/lumen/behavior"
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
)

// attachedBehavior binds one behavior instance to its entity
type attachedBehavior struct {
	entity   core.Entity
	behavior behavior.Behavior
}

// Scene owns a world and the behaviors attached to its entities.
// Ownership of a behavior is shared between this list and the entity
// it drives; the list is consumed by the external tick driver.
type Scene struct {
	name      string
	world     *engine.World
	behaviors []attachedBehavior
}

func newScene(name string) *Scene {
	return &Scene{
		name:  name,
		world: engine.NewWorld(),
	}
}

// Name returns the registration name of the scene
func (s *Scene) Name() string {
	return s.name
}

// World returns the entity registry backing this scene
func (s *Scene) World() *engine.World {
	return s.world
}

// CreateEntity creates an entity in the scene's world, with its
// default transform already attached
func (s *Scene) CreateEntity() core.Entity {
	return s.world.CreateEntity()
}

// AddBehaviour registers a behavior bound to an entity for per-tick
// invocation. There is no uniqueness constraint: several behaviors of
// the same or different types may drive one entity.
func (s *Scene) AddBehaviour(e core.Entity, b behavior.Behavior) {
	s.behaviors = append(s.behaviors, attachedBehavior{entity: e, behavior: b})
}

// Update drives every attached behavior once. Called by the external
// per-frame loop.
func (s *Scene) Update(dt time.Duration) {
	for _, ab := range s.behaviors {
		ab.behavior.Update(s.world, ab.entity, dt)
	}
}

// BehaviourCount returns the number of registered behaviors
func (s *Scene) BehaviourCount() int {
	return len(s.behaviors)
}

// BehavioursFor returns the behaviors attached to one entity, in
// registration order
func (s *Scene) BehavioursFor(e core.Entity) []behavior.Behavior {
	var out []behavior.Behavior
	for _, ab := range s.behaviors {
		if ab.entity == e {
			out = append(out, ab.behavior)
		}
	}
	return out
}
