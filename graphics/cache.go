package graphics

import (
	"sync"

	"github.com/kestrelforge/lumen/core"
)

// TextureCache memoizes solid-color textures by their exact color key.
// For a given key at most one texture is ever created; hits return the
// same shared handle. Entries are never evicted, the cache lives as
// long as the scene build that owns it.
//
// The cache is an explicitly owned object handed to whoever composes a
// scene, never package state, so tests get a fresh cache each time.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[core.Color4]*Texture2D
}

// NewTextureCache creates an empty cache
func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[core.Color4]*Texture2D),
	}
}

// GetOrCreate returns the cached texture for the color, constructing
// it on first request. Miss construction is synchronous; the scene
// build phase is single-threaded, the lock only guards against
// concurrent readers during ticking.
func (tc *TextureCache) GetOrCreate(c core.Color4) *Texture2D {
	tc.mu.RLock()
	if tex, ok := tc.textures[c]; ok {
		tc.mu.RUnlock()
		return tex
	}
	tc.mu.RUnlock()

	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Double-check after acquiring write lock
	if tex, ok := tc.textures[c]; ok {
		return tex
	}

	tex := NewSolidTexture(c)
	tc.textures[c] = tex
	return tex
}

// Len returns the number of distinct cached colors
func (tc *TextureCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.textures)
}
