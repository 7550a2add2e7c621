package asset

import (
	"fmt"
	"sync"

	"github.com/kestrelforge/lumen/graphics"
)

// TextureFlags mirror the loader options of the engine's texture path
type TextureFlags struct {
	GenerateMips bool
	SRGB         bool
	FlipVertical bool
}

// Loader is the narrow boundary to the surrounding engine's asset
// pipeline. Scene composition only needs these three operations; the
// actual parsing and decoding live on the other side.
type Loader interface {
	LoadMesh(path string) (*MeshData, error)
	LoadTexture(path string, flags TextureFlags) (*graphics.Texture2D, error)
	LoadShaderSource(path string) (string, error)
}

// Library is an in-memory Loader backed by registered entries. It
// serves scene composition in tools and tests; a real engine loader
// satisfies the same interface.
type Library struct {
	mu       sync.RWMutex
	meshes   map[string]*MeshData
	textures map[string]*graphics.Texture2D
	shaders  map[string]string
}

// NewLibrary creates an empty asset library
func NewLibrary() *Library {
	return &Library{
		meshes:   make(map[string]*MeshData),
		textures: make(map[string]*graphics.Texture2D),
		shaders:  make(map[string]string),
	}
}

// AddMesh registers mesh data under a path
func (l *Library) AddMesh(path string, data *MeshData) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.meshes[path] = data
}

// AddTexture registers a texture under a path
func (l *Library) AddTexture(path string, tex *graphics.Texture2D) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.textures[path] = tex
}

// AddShaderSource registers shader source under a path
func (l *Library) AddShaderSource(path, src string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shaders[path] = src
}

// LoadMesh returns registered mesh data, failing on unknown paths
func (l *Library) LoadMesh(path string) (*MeshData, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.meshes[path]
	if !ok {
		return nil, fmt.Errorf("asset: mesh %q not found", path)
	}
	return data, nil
}

// LoadTexture returns a registered texture, failing on unknown paths
func (l *Library) LoadTexture(path string, _ TextureFlags) (*graphics.Texture2D, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tex, ok := l.textures[path]
	if !ok {
		return nil, fmt.Errorf("asset: texture %q not found", path)
	}
	return tex, nil
}

// LoadShaderSource returns registered shader source, failing on
// unknown paths
func (l *Library) LoadShaderSource(path string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	src, ok := l.shaders[path]
	if !ok {
		return "", fmt.Errorf("asset: shader source %q not found", path)
	}
	return src, nil
}
