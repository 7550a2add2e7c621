package behavior

import (
	"math"
	"time"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
	"github.com/kestrelforge/lumen/vmath"
)

const degToRad = math.Pi / 180.0

// Rotate spins the entity's transform at a fixed rate per axis,
// in degrees per second
type Rotate struct {
	Speed vmath.Vec3F
}

// NewRotate creates a rotate behavior with per-axis speeds in
// degrees per second
func NewRotate(speed vmath.Vec3F) *Rotate {
	return &Rotate{Speed: speed}
}

func (r *Rotate) Update(w *engine.World, e core.Entity, dt time.Duration) {
	t, ok := w.Transforms.Get(e)
	if !ok {
		return
	}
	s := dt.Seconds()
	if r.Speed.X != 0 {
		t.Rotate(vmath.M4RotationX(r.Speed.X * degToRad * s))
	}
	if r.Speed.Y != 0 {
		t.Rotate(vmath.M4RotationY(r.Speed.Y * degToRad * s))
	}
	if r.Speed.Z != 0 {
		t.Rotate(vmath.M4RotationZ(r.Speed.Z * degToRad * s))
	}
}
