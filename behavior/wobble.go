package behavior

import (
	"math/rand"
	"time"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/engine"
	"github.com/kestrelforge/lumen/vmath"
)

// Wobble jitters the entity's position randomly each tick, scaled by
// amplitude. A seeded source keeps runs reproducible.
type Wobble struct {
	Amplitude float64

	rng *rand.Rand
}

// NewWobble creates a wobble behavior with its own seeded source
func NewWobble(amplitude float64, seed int64) *Wobble {
	return &Wobble{
		Amplitude: amplitude,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (b *Wobble) Update(w *engine.World, e core.Entity, dt time.Duration) {
	t, ok := w.Transforms.Get(e)
	if !ok {
		return
	}
	s := dt.Seconds() * b.Amplitude
	t.Position = vmath.V3FAdd(t.Position, vmath.Vec3F{
		X: (b.rng.Float64()*2 - 1) * s,
		Y: (b.rng.Float64()*2 - 1) * s,
		Z: (b.rng.Float64()*2 - 1) * s,
	})
}
