package asset

import (
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
)

// NewDemoLibrary returns a library preloaded with the placeholder
// content the bundled tools compose against: two simple meshes, the
// forward and emissive shader pair, and flat stand-in textures.
func NewDemoLibrary() *Library {
	l := NewLibrary()

	l.AddMesh("orb.obj", &MeshData{
		Name: "orb",
		Vertices: []float32{
			0, 1, 0,
			-1, -1, 1,
			1, -1, 1,
			0, -1, -1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3, 0, 3, 1, 1, 3, 2},
	})
	l.AddMesh("slab.obj", &MeshData{
		Name: "slab",
		Vertices: []float32{
			-1, 0, -1,
			1, 0, -1,
			1, 0, 1,
			-1, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	})

	l.AddShaderSource("shaders/lighting.vs.glsl", demoVertexSource)
	l.AddShaderSource("shaders/forward.fs.glsl", demoForwardSource)
	l.AddShaderSource("shaders/forward-emissive.fs.glsl", demoEmissiveSource)

	stone := graphics.NewSolidTexture(core.RGBA(0.55, 0.55, 0.6, 1))
	stone.SetLabel("stone")
	glow := graphics.NewSolidTexture(core.RGBA(0.9, 0.8, 0.3, 1))
	glow.SetLabel("glow")
	l.AddTexture("stone.png", stone)
	l.AddTexture("glow.png", glow)

	return l
}

const demoVertexSource = `#version 410
layout(location = 0) in vec3 inPosition;
uniform mat4 a_ModelViewProjection;
void main() { gl_Position = a_ModelViewProjection * vec4(inPosition, 1.0); }
`

const demoForwardSource = `#version 410
uniform sampler2D s_Albedo;
in vec2 inUV;
out vec4 outColor;
void main() { outColor = texture(s_Albedo, inUV); }
`

const demoEmissiveSource = `#version 410
uniform sampler2D s_Albedo;
uniform sampler2D s_Emissive;
uniform float a_EmissiveStrength;
in vec2 inUV;
out vec4 outColor;
void main() {
	vec4 base = texture(s_Albedo, inUV);
	outColor = base + texture(s_Emissive, inUV) * a_EmissiveStrength;
}
`
