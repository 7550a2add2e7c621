package behavior

import (
	"time"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
	"github.com/kestrelforge/lumen/vmath"
)

// Control translates the entity along an externally supplied input
// axis. Input handling itself lives outside this layer; whatever reads
// the device calls SetAxis before the tick.
type Control struct {
	Speed vmath.Vec3F

	axis vmath.Vec3F
}

// NewControl creates a control behavior with per-axis speed scaling
func NewControl(speed vmath.Vec3F) *Control {
	return &Control{Speed: speed}
}

// SetAxis supplies the current input direction, each component
// expected in [-1, 1]
func (c *Control) SetAxis(axis vmath.Vec3F) {
	c.axis = axis
}

func (c *Control) Update(w *engine.World, e core.Entity, dt time.Duration) {
	t, ok := w.Transforms.Get(e)
	if !ok {
		return
	}
	s := dt.Seconds()
	t.Position = vmath.V3FAdd(t.Position, vmath.Vec3F{
		X: c.axis.X * c.Speed.X * s,
		Y: c.axis.Y * c.Speed.Y * s,
		Z: c.axis.Z * c.Speed.Z * s,
	})
}
