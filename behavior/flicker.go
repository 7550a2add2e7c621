package behavior

import (
	"math"
	"time"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
)

// LightFlicker modulates a point light's brightness with a sinusoidal
// sweep between Min and Max multipliers of its base color
type LightFlicker struct {
	Speed float64 // sweep rate in radians per second
	Min   float64 // lower brightness multiplier
	Max   float64 // upper brightness multiplier

	phase   float64
	base    core.Color4
	hasBase bool
}

// NewLightFlicker creates a flicker behavior. The base color is
// captured from the light on the first tick, so composition can set
// the color after attaching the behavior.
func NewLightFlicker(speed, min, max float64) *LightFlicker {
	return &LightFlicker{Speed: speed, Min: min, Max: max}
}

func (f *LightFlicker) Update(w *engine.World, e core.Entity, dt time.Duration) {
	light, ok := w.PointLights.Get(e)
	if !ok {
		return
	}
	if !f.hasBase {
		f.base = light.Color
		f.hasBase = true
	}

	f.phase += f.Speed * dt.Seconds()
	factor := f.Min + (f.Max-f.Min)*(math.Sin(f.phase)+1)/2
	light.Color = f.base.Scale(float32(factor))
}
