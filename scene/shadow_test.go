package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/vmath"
)

func testScene(t *testing.T) *Scene {
	t.Helper()
	m := NewManager()
	s, err := m.Register("test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return s
}

func TestShadowCasterDerivesProjectionAndAttenuationTogether(t *testing.T) {
	s := testScene(t)

	e, light, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: vmath.Vec3F{X: 0, Y: 10, Z: 10},
		Target:   vmath.Vec3F{},
		Up:       vmath.Vec3F{Y: 1},
		Distance: 10.0,
	})
	if err != nil {
		t.Fatalf("CreateShadowCaster: %v", err)
	}
	if e == core.EntityNone {
		t.Fatalf("Expected a live entity")
	}

	if light.Attenuation != 0.1 {
		t.Errorf("Expected attenuation exactly 0.1 for distance 10, got %v", light.Attenuation)
	}

	want := vmath.M4Perspective(60.0, 1.0, 0.25, 10.0)
	if !vmath.M4NearlyEqual(light.Projection, want, 1e-12) {
		t.Errorf("Projection does not match perspective(60, 1, 0.25, distance)")
	}

	// Recover the far plane from the projection coefficients
	far := light.Projection[14] / (light.Projection[10] + 1)
	if math.Abs(far-10.0) > 1e-9 {
		t.Errorf("Expected projection far plane 10, recovered %v", far)
	}

	if light.Color != core.ColorWhite {
		t.Errorf("Expected white default light color, got %+v", light.Color)
	}
}

func TestShadowCasterBufferIsDepthOnlyAndValidated(t *testing.T) {
	s := testScene(t)

	_, light, err := CreateShadowCaster(s, ShadowCasterParams{
		Position:  vmath.Vec3F{X: 5, Y: 5, Z: 5},
		Target:    vmath.Vec3F{},
		Up:        vmath.Vec3F{Y: 1},
		DebugName: "KeyLight",
	})
	if err != nil {
		t.Fatalf("CreateShadowCaster: %v", err)
	}

	fb := light.ShadowBuffer
	if !fb.Validated() {
		t.Fatalf("Expected validated shadow buffer")
	}
	if fb.Width() != 1024 || fb.Height() != 1024 {
		t.Errorf("Expected default 1024x1024 buffer, got %dx%d", fb.Width(), fb.Height())
	}
	if fb.DebugName() != "KeyLight" {
		t.Errorf("Expected debug name to be set, got %q", fb.DebugName())
	}

	atts := fb.Attachments()
	if len(atts) != 1 {
		t.Fatalf("Expected a single depth attachment, got %d", len(atts))
	}
	a := atts[0]
	if a.Slot != graphics.SlotDepth || a.Format != graphics.Depth32 || !a.ShaderReadable {
		t.Errorf("Expected shader-readable pure-depth attachment, got %+v", a)
	}
}

func TestShadowCasterTransformLooksAtTarget(t *testing.T) {
	s := testScene(t)

	pos := vmath.Vec3F{X: 0, Y: 10, Z: 10}
	e, _, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: pos,
		Target:   vmath.Vec3F{},
		Up:       vmath.Vec3F{Y: 1},
	})
	if err != nil {
		t.Fatalf("CreateShadowCaster: %v", err)
	}

	tr, ok := s.World().Transforms.Get(e)
	if !ok {
		t.Fatalf("Expected transform on shadow caster")
	}
	if tr.Position != pos {
		t.Errorf("Expected position %+v, got %+v", pos, tr.Position)
	}
	if vmath.M4NearlyEqual(tr.Orientation, vmath.M4Identity(), 1e-12) {
		t.Errorf("Expected oriented transform, still identity")
	}
}

func TestShadowCasterDegenerateLookAtAbortsCleanly(t *testing.T) {
	s := testScene(t)

	// Forward axis parallel to up
	_, _, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: vmath.Vec3F{Y: 10},
		Target:   vmath.Vec3F{},
		Up:       vmath.Vec3F{Y: 1},
	})
	if !errors.Is(err, vmath.ErrDegenerateLookAt) {
		t.Fatalf("Expected ErrDegenerateLookAt, got %v", err)
	}

	// No partially-formed light may survive the abort
	if s.World().EntityCount() != 0 {
		t.Errorf("Expected no entities after aborted creation, got %d", s.World().EntityCount())
	}
	if s.World().ShadowLights.Count() != 0 {
		t.Errorf("Expected no shadow lights after aborted creation")
	}
}

func TestShadowCasterRejectsBadParameters(t *testing.T) {
	s := testScene(t)

	if _, _, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: vmath.Vec3F{X: 1},
		Up:       vmath.Vec3F{Y: 1},
		Distance: -1,
	}); err == nil {
		t.Errorf("Expected negative distance to be rejected")
	}

	if _, _, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: vmath.Vec3F{X: 1},
		Up:       vmath.Vec3F{Y: 1},
		Width:    -5,
	}); err == nil {
		t.Errorf("Expected negative buffer size to be rejected")
	}

	if s.World().EntityCount() != 0 {
		t.Errorf("Failed creations must not leave entities behind")
	}
}

func TestShadowCasterNonSquareAspect(t *testing.T) {
	s := testScene(t)

	_, light, err := CreateShadowCaster(s, ShadowCasterParams{
		Position: vmath.Vec3F{X: 0, Y: 4, Z: 8},
		Target:   vmath.Vec3F{},
		Up:       vmath.Vec3F{Y: 1},
		Width:    2048,
		Height:   1024,
		Distance: 20.0,
		FOV:      90.0,
	})
	if err != nil {
		t.Fatalf("CreateShadowCaster: %v", err)
	}

	want := vmath.M4Perspective(90.0, 2.0, 0.25, 20.0)
	if !vmath.M4NearlyEqual(light.Projection, want, 1e-12) {
		t.Errorf("Expected aspect ratio width/height in projection")
	}
	if light.Attenuation != 1.0/20.0 {
		t.Errorf("Expected attenuation 0.05, got %v", light.Attenuation)
	}
}
