package component

import (
	"github.com/kestrelforge/lumen/core"
)

// PointLight emits in all directions from the entity's position.
// All fields are set in one construction step; a partially initialized
// light is undefined for the render pass.
type PointLight struct {
	Color       core.Color4
	Attenuation float64
}
