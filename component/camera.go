package component

import (
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/vmath"
)

// Camera renders the scene into its back buffer; front and back swap
// for double-buffered presentation.
type Camera struct {
	BackBuffer  *graphics.FrameBuffer
	FrontBuffer *graphics.FrameBuffer
	IsMain      bool
	Projection  vmath.Mat4
}
