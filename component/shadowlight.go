package component

import (
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/vmath"
)

// ShadowLight is a shadow-casting light source. Its depth buffer is
// rendered from the light's point of view each shadow pass.
//
// Projection and Attenuation are always derived together from the same
// draw distance; they are never set to inconsistent values
// independently. Construction goes through scene.CreateShadowCaster.
type ShadowLight struct {
	ShadowBuffer *graphics.FrameBuffer
	Projection   vmath.Mat4
	Attenuation  float64
	Color        core.Color4
}
