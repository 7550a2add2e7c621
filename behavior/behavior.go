// Package behavior holds reusable per-entity update logic. A behavior
// is constructed with entity-specific parameters, registered against an
// entity in a scene, and driven by the external per-frame update loop.
package behavior

import (
	"time"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
)

// Behavior is one unit of per-entity update logic. Implementations
// carry their own parameter struct; the scene invokes Update each tick.
type Behavior interface {
	Update(w *engine.World, e core.Entity, dt time.Duration)
}
