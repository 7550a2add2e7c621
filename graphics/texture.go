package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/kestrelforge/lumen/core"
)

// TextureDesc describes a 2D texture allocation
type TextureDesc struct {
	Size      gputypes.Extent3D
	Format    gputypes.TextureFormat
	MinFilter gputypes.FilterMode
	MagFilter gputypes.FilterMode
	AddressU  gputypes.AddressMode
	AddressV  gputypes.AddressMode
	MipLevels uint32
}

// Texture2D is a shared GPU texture handle. Components referencing the
// same texture hold the same pointer; lifetime belongs to the longest
// holder (cache entry, material, or component).
type Texture2D struct {
	desc  TextureDesc
	label string
	pix   []byte
}

// NewTexture2D allocates a texture with the given description and
// uploads the initial pixel data
func NewTexture2D(desc TextureDesc, pix []byte) (*Texture2D, error) {
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("graphics: texture dimensions must be positive, got %dx%d",
			desc.Size.Width, desc.Size.Height)
	}
	if desc.MipLevels == 0 {
		desc.MipLevels = 1
	}
	if desc.Size.DepthOrArrayLayers == 0 {
		desc.Size.DepthOrArrayLayers = 1
	}
	return &Texture2D{desc: desc, pix: pix}, nil
}

// NewSolidTexture builds a 1x1 texture holding a constant color.
// The resource represents a value, not a sampled image, so filtering
// is nearest, addressing clamps, and there is a single mip level.
func NewSolidTexture(c core.Color4) *Texture2D {
	px := c.Bytes()
	tex, _ := NewTexture2D(TextureDesc{
		Size:      gputypes.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
		Format:    gputypes.TextureFormatRGBA8Unorm,
		MinFilter: gputypes.FilterModeNearest,
		MagFilter: gputypes.FilterModeNearest,
		AddressU:  gputypes.AddressModeClampToEdge,
		AddressV:  gputypes.AddressModeClampToEdge,
		MipLevels: 1,
	}, px[:])
	return tex
}

// Desc returns the texture description
func (t *Texture2D) Desc() TextureDesc {
	return t.desc
}

// Pixels returns the texture's backing pixel data
func (t *Texture2D) Pixels() []byte {
	return t.pix
}

// SetLabel attaches a diagnostic name to the texture
func (t *Texture2D) SetLabel(label string) {
	t.label = label
}

// Label returns the diagnostic name, empty if unset
func (t *Texture2D) Label() string {
	return t.label
}
