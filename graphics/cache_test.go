package graphics

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/kestrelforge/lumen/core"
)

func TestCacheReturnsSharedHandleForEqualColors(t *testing.T) {
	cache := NewTextureCache()

	c := core.RGBA(0.2, 0.4, 0.6, 1.0)
	first := cache.GetOrCreate(c)
	second := cache.GetOrCreate(core.RGBA(0.2, 0.4, 0.6, 1.0))

	if first != second {
		t.Errorf("Expected identical shared handle for bitwise-equal colors, got distinct textures")
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 cached texture, got %d", cache.Len())
	}
}

func TestCacheDistinctColorsDistinctTextures(t *testing.T) {
	cache := NewTextureCache()

	a := cache.GetOrCreate(core.RGBA(1, 0, 0, 1))
	b := cache.GetOrCreate(core.RGBA(0, 1, 0, 1))

	if a == b {
		t.Errorf("Expected distinct textures for distinct colors")
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached textures, got %d", cache.Len())
	}
}

func TestCacheAlphaParticipatesInKey(t *testing.T) {
	cache := NewTextureCache()

	opaque := cache.GetOrCreate(core.RGBA(1, 1, 1, 1))
	translucent := cache.GetOrCreate(core.RGBA(1, 1, 1, 0.5))

	if opaque == translucent {
		t.Errorf("Expected alpha to distinguish cache keys")
	}
}

func TestSolidTextureIsMinimalConstantResource(t *testing.T) {
	tex := NewSolidTexture(core.RGBA(0, 0, 1, 1))
	desc := tex.Desc()

	if desc.Size.Width != 1 || desc.Size.Height != 1 {
		t.Errorf("Expected 1x1 texture, got %dx%d", desc.Size.Width, desc.Size.Height)
	}
	if desc.MipLevels != 1 {
		t.Errorf("Expected single mip level, got %d", desc.MipLevels)
	}
	if desc.MinFilter != gputypes.FilterModeNearest || desc.MagFilter != gputypes.FilterModeNearest {
		t.Errorf("Expected nearest filtering for constant-value texture")
	}
	if desc.AddressU != gputypes.AddressModeClampToEdge || desc.AddressV != gputypes.AddressModeClampToEdge {
		t.Errorf("Expected clamp addressing for constant-value texture")
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Expected RGBA8 format, got %v", desc.Format)
	}

	pix := tex.Pixels()
	want := []byte{0, 0, 255, 255}
	if len(pix) != 4 {
		t.Fatalf("Expected 4 bytes of pixel data, got %d", len(pix))
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("Pixel byte %d: expected %d, got %d", i, want[i], pix[i])
		}
	}
}
