package scene

import (
	"fmt"
	"math"

	"github.com/kestrelforge/lumen/asset"
	"github.com/kestrelforge/lumen/behavior"
	"github.com/kestrelforge/lumen/config"
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/vmath"
)

// Asset paths the reference scene pulls through the loader
const (
	meshOrb     = "orb.obj"
	meshSlab    = "slab.obj"
	shaderVert  = "shaders/lighting.vs.glsl"
	shaderFrag  = "shaders/forward.fs.glsl"
	shaderEmiss = "shaders/forward-emissive.fs.glsl"
	texStone    = "stone.png"
	texGlow     = "glow.png"
)

// Builder composes one world snapshot. All collaborators are injected:
// the asset loader, the texture cache and the scene manager are owned
// by the caller, so tests run with fresh state every time.
type Builder struct {
	Scenes   *Manager
	Assets   asset.Loader
	Textures *graphics.TextureCache
	Config   config.Config
}

// Initialize runs the composition script once: scene registration,
// asset and shader acquisition, material construction, then the entity
// blocks in dependency order. The first failing block aborts the whole
// build; composition runs at startup and a partial scene is worse than
// no scene.
func (b *Builder) Initialize() (*Scene, error) {
	s, err := b.Scenes.Register("main")
	if err != nil {
		return nil, err
	}
	if err := b.Scenes.SetCurrent("main"); err != nil {
		return nil, err
	}

	// Shared resources come first; entity blocks reference them
	orbData, err := b.Assets.LoadMesh(meshOrb)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	slabData, err := b.Assets.LoadMesh(meshSlab)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	orb := asset.Bake(orbData)
	slab := asset.Bake(slabData)

	forward, err := b.loadShader(shaderVert, shaderFrag)
	if err != nil {
		return nil, err
	}
	emissive, err := b.loadShader(shaderVert, shaderEmiss)
	if err != nil {
		return nil, err
	}

	stone, err := b.Assets.LoadTexture(texStone, asset.TextureFlags{GenerateMips: true, SRGB: true})
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	glow, err := b.Assets.LoadTexture(texGlow, asset.TextureFlags{GenerateMips: true, SRGB: true})
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	glowMat, err := asset.NewMaterial(emissive)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	glowMat.Set("s_Albedo", stone)
	glowMat.Set("s_Emissive", glow)
	glowMat.Set("a_EmissiveStrength", 4.0)

	plainMat, err := asset.NewMaterial(forward)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	plainMat.Set("s_Albedo", stone)

	// Entity blocks are independent of each other; only the shared
	// resources above must already exist

	// Player-steered orb
	{
		e := s.CreateEntity()
		r, err := s.world.Renderables.Attach(e)
		if err != nil {
			return nil, err
		}
		r.Mesh = orb
		r.Material = glowMat
		s.AddBehaviour(e, behavior.NewControl(vmath.Vec3F{X: 1, Y: 1, Z: 1}))
	}

	// Two counter-rotating slabs
	{
		e := s.CreateEntity()
		r, err := s.world.Renderables.Attach(e)
		if err != nil {
			return nil, err
		}
		r.Mesh = slab
		r.Material = glowMat
		s.AddBehaviour(e, behavior.NewRotate(vmath.Vec3F{X: 45, Y: 45, Z: 45}))
		s.AddBehaviour(e, behavior.NewWobble(0.05, int64(e)))
	}
	{
		e := s.CreateEntity()
		r, err := s.world.Renderables.Attach(e)
		if err != nil {
			return nil, err
		}
		r.Mesh = slab
		r.Material = glowMat
		s.AddBehaviour(e, behavior.NewRotate(vmath.Vec3F{X: -45, Y: -45, Z: -45}))
		s.AddBehaviour(e, behavior.NewWobble(0.05, int64(e)))
	}

	if err := b.buildCamera(s, plainMat, orb); err != nil {
		return nil, err
	}

	if b.Config.Shadow.Enabled {
		_, _, err := CreateShadowCaster(s, ShadowCasterParams{
			Position:  vmath.Vec3F{X: 0, Y: 10, Z: 10},
			Target:    vmath.Vec3F{},
			Up:        vmath.Vec3F{Y: 1},
			Distance:  b.Config.Shadow.Distance,
			FOV:       b.Config.Shadow.FOV,
			Width:     b.Config.Shadow.BufferSize,
			Height:    b.Config.Shadow.BufferSize,
			DebugName: "SunShadow",
		})
		if err != nil {
			return nil, err
		}
	}

	if err := b.buildLightRing(s, forward, orb); err != nil {
		return nil, err
	}

	return s, nil
}

// buildCamera assembles the main presentation target and the camera
// entity that owns it. The buffer carries color, normal and emissive
// outputs plus a sampleable depth attachment, multisampled for
// on-screen presentation.
func (b *Builder) buildCamera(s *Scene, mat *asset.Material, mesh *asset.BakedMesh) error {
	buffer, err := graphics.NewFrameBuffer(b.Config.Window.Width, b.Config.Window.Height, 4)
	if err != nil {
		return fmt.Errorf("scene: main buffer: %w", err)
	}
	attachments := []graphics.AttachmentDesc{
		{Slot: graphics.SlotColor0, Format: graphics.ColorRGBA8, ShaderReadable: true},
		{Slot: graphics.SlotColor1, Format: graphics.ColorRGB10, ShaderReadable: true},
		{Slot: graphics.SlotColor2, Format: graphics.ColorRGB10, ShaderReadable: true},
		{Slot: graphics.SlotDepth, Format: graphics.Depth32, ShaderReadable: true},
	}
	for _, a := range attachments {
		if err := buffer.AddAttachment(a); err != nil {
			return fmt.Errorf("scene: main buffer: %w", err)
		}
	}
	if err := buffer.Validate(); err != nil {
		return fmt.Errorf("scene: main buffer: %w", err)
	}
	buffer.SetDebugName("MainBuffer")

	e := s.CreateEntity()
	cam, err := s.world.Cameras.Attach(e)
	if err != nil {
		return err
	}
	front, err := buffer.Clone()
	if err != nil {
		return fmt.Errorf("scene: main buffer: %w", err)
	}
	cam.BackBuffer = buffer
	cam.FrontBuffer = front
	cam.IsMain = true
	cam.Projection = vmath.M4Perspective(60.0, 1.0, 0.1, 1000.0)

	t, _ := s.world.Transforms.Get(e)
	t.SetPosition(vmath.Vec3F{X: 0, Y: 10, Z: 5})
	if err := t.LookAt(vmath.Vec3F{}, vmath.Vec3F{Y: 1}); err != nil {
		return fmt.Errorf("scene: camera orientation: %w", err)
	}

	// A small shadow-casting shape rides along with the camera
	r, err := s.world.Renderables.Attach(e)
	if err != nil {
		return err
	}
	r.Mesh = mesh
	r.Material = mat

	return nil
}

// buildLightRing places the configured number of point lights on a
// circle, each with a flickering color derived from its ring index and
// an indicator shape textured in the light's own color.
func (b *Builder) buildLightRing(s *Scene, shader *asset.Shader, mesh *asset.BakedMesh) error {
	cfg := b.Config.Lights
	step := 2 * math.Pi / float64(cfg.RingTotal)

	for i := 0; i < cfg.Ring; i++ {
		e := s.CreateEntity()
		light, err := s.world.PointLights.Attach(e)
		if err != nil {
			return err
		}
		light.Color = RingLightColor(i, cfg.RingTotal)
		light.Attenuation = 1.0 / cfg.Distance

		t, _ := s.world.Transforms.Get(e)
		t.SetPosition(vmath.Vec3F{
			X: math.Cos(step*float64(i)) * cfg.Radius,
			Y: cfg.Height,
			Z: math.Sin(step*float64(i)) * cfg.Radius,
		})

		// Indicator shape in the light's own color; identical colors
		// share one cached texture
		mat, err := asset.NewMaterial(shader)
		if err != nil {
			return err
		}
		mat.Set("s_Albedo", b.Textures.GetOrCreate(light.Color))
		r, err := s.world.Renderables.Attach(e)
		if err != nil {
			return err
		}
		r.Mesh = mesh
		r.Material = mat

		s.AddBehaviour(e, behavior.NewLightFlicker(cfg.Flicker.Speed, cfg.Flicker.Min, cfg.Flicker.Max))
	}
	return nil
}

func (b *Builder) loadShader(vertPath, fragPath string) (*asset.Shader, error) {
	sh := asset.NewShader()
	if err := sh.LoadPart(b.Assets, asset.StageVertex, vertPath); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := sh.LoadPart(b.Assets, asset.StageFragment, fragPath); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := sh.Link(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return sh, nil
}

// RingLightColor computes the deterministic color of ring light i out
// of total. Channels sweep sinusoidally around the ring and are scaled
// into a dim range so the flicker multiplier never saturates them.
func RingLightColor(i, total int) core.Color4 {
	a := -float64(i) * (2 * math.Pi / float64(total))
	return core.Color4{
		R: float32((math.Sin(a) + 1) / 2 * 0.1),
		G: float32((math.Cos(a) + 1) / 2 * 0.1),
		B: float32((math.Sin(a+math.Pi) + 1) / 2 * 0.1),
		A: 1,
	}
}
