package component

import (
	"github.com/kestrelforge/lumen/asset"
)

// Renderable draws an immutable baked mesh with a shared material.
// At most one per entity.
type Renderable struct {
	Mesh     *asset.BakedMesh
	Material *asset.Material
}
