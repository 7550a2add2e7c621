package asset

// MeshData is raw geometry as produced by a loader, before baking.
// The parsing format itself lives behind the Loader boundary.
type MeshData struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// BakedMesh is immutable GPU-resident geometry. Renderable components
// reference baked meshes by shared handle.
type BakedMesh struct {
	Name        string
	VertexCount int
	IndexCount  int
}

// Bake uploads mesh data and returns the immutable baked form
func Bake(data *MeshData) *BakedMesh {
	return &BakedMesh{
		Name:        data.Name,
		VertexCount: len(data.Vertices) / 3,
		IndexCount:  len(data.Indices),
	}
}
