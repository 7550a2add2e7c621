package component

import (
	"github.com/kestrelforge/lumen/vmath"
)

// Transform is the baseline spatial component every entity carries.
// It is attached at entity creation, before any other component.
type Transform struct {
	Position    vmath.Vec3F
	Orientation vmath.Mat4
}

// NewTransform returns a transform at the origin with identity
// orientation
func NewTransform() Transform {
	return Transform{Orientation: vmath.M4Identity()}
}

// SetPosition moves the transform to a world-space position
func (t *Transform) SetPosition(p vmath.Vec3F) {
	t.Position = p
}

// LookAt orients the transform toward target using up as the reference
// axis. Degenerate geometry (forward parallel to up, or target equal to
// the current position) is an error and leaves the transform unchanged.
func (t *Transform) LookAt(target, up vmath.Vec3F) error {
	m, err := vmath.M4LookAt(t.Position, target, up)
	if err != nil {
		return err
	}
	t.Orientation = m
	return nil
}

// Rotate applies an additional rotation to the current orientation
func (t *Transform) Rotate(r vmath.Mat4) {
	t.Orientation = vmath.M4Mul(t.Orientation, r)
}
