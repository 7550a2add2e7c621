package scene

import (
	"fmt"

	"github.com/kestrelforge/lumen/component"
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/vmath"
)

// shadowNear is the near clipping plane of every shadow projection
const shadowNear = 0.25

// ShadowCasterParams describes one shadow-casting light. Zero values
// for Distance, FOV and buffer size fall back to the engine defaults
// (10 units, 60 degrees, 1024x1024).
type ShadowCasterParams struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
	Up       vmath.Vec3F

	// Distance is the far clipping plane of the light. Projection and
	// attenuation both derive from it.
	Distance float64
	// FOV is the light's field of view in degrees
	FOV float64

	Width  int
	Height int

	// DebugName tags the shadow buffer for diagnostics
	DebugName string
}

func (p *ShadowCasterParams) applyDefaults() {
	if p.Distance == 0 {
		p.Distance = 10.0
	}
	if p.FOV == 0 {
		p.FOV = 60.0
	}
	if p.Width == 0 {
		p.Width = 1024
	}
	if p.Height == 0 {
		p.Height = 1024
	}
}

// CreateShadowCaster builds a fully initialized shadow-casting light:
// a validated depth-only shader-readable buffer, a fresh entity, a
// shadow light whose projection and attenuation derive from the same
// distance, and a transform looking from Position toward Target.
//
// Any failing step aborts the whole operation; no partially formed
// light is ever returned. The buffer is validated before the entity
// exists, and a degenerate look-at destroys the entity again.
func CreateShadowCaster(s *Scene, p ShadowCasterParams) (core.Entity, *component.ShadowLight, error) {
	p.applyDefaults()

	if p.Distance <= 0 {
		return core.EntityNone, nil, fmt.Errorf("scene: shadow distance must be positive, got %v", p.Distance)
	}
	if p.FOV <= 0 || p.FOV >= 180 {
		return core.EntityNone, nil, fmt.Errorf("scene: shadow fov must be in (0, 180), got %v", p.FOV)
	}

	// The shadow buffer is depth-only; the depth attachment is a
	// texture so the shadow pass output can be sampled
	buffer, err := graphics.NewFrameBuffer(p.Width, p.Height)
	if err != nil {
		return core.EntityNone, nil, fmt.Errorf("scene: shadow buffer: %w", err)
	}
	if err := buffer.AddAttachment(graphics.AttachmentDesc{
		Slot:           graphics.SlotDepth,
		Format:         graphics.Depth32,
		ShaderReadable: true,
	}); err != nil {
		return core.EntityNone, nil, fmt.Errorf("scene: shadow buffer: %w", err)
	}
	if err := buffer.Validate(); err != nil {
		return core.EntityNone, nil, fmt.Errorf("scene: shadow buffer: %w", err)
	}
	if p.DebugName != "" {
		buffer.SetDebugName(p.DebugName)
	}

	entity := s.CreateEntity()

	light, err := s.world.ShadowLights.Attach(entity)
	if err != nil {
		// Fresh entity, cannot happen; keep the invariant anyway
		s.world.DestroyEntity(entity)
		return core.EntityNone, nil, err
	}
	light.ShadowBuffer = buffer
	light.Projection = vmath.M4Perspective(p.FOV, float64(p.Width)/float64(p.Height), shadowNear, p.Distance)
	light.Attenuation = 1.0 / p.Distance
	light.Color = core.ColorWhite

	t, _ := s.world.Transforms.Get(entity)
	t.SetPosition(p.Position)
	if err := t.LookAt(p.Target, p.Up); err != nil {
		s.world.DestroyEntity(entity)
		return core.EntityNone, nil, fmt.Errorf("scene: shadow caster orientation: %w", err)
	}

	return entity, light, nil
}
