package asset

import (
	"errors"
	"sort"
)

// ErrUnlinkedShader is returned when a material is built on a shader
// that has not been linked yet
var ErrUnlinkedShader = errors.New("asset: material requires a linked shader")

// Material binds a shader with named parameter values. Materials are
// shared: many renderable components may reference the same material
// handle.
type Material struct {
	shader *Shader
	params map[string]any
}

// NewMaterial creates a material over a linked shader
func NewMaterial(shader *Shader) (*Material, error) {
	if shader == nil || !shader.Linked() {
		return nil, ErrUnlinkedShader
	}
	return &Material{
		shader: shader,
		params: make(map[string]any),
	}, nil
}

// Set binds a named parameter value (texture handle, scalar, vector)
func (m *Material) Set(name string, value any) {
	m.params[name] = value
}

// Get returns a bound parameter value
func (m *Material) Get(name string) (any, bool) {
	v, ok := m.params[name]
	return v, ok
}

// Shader returns the program this material renders with
func (m *Material) Shader() *Shader {
	return m.shader
}

// ParamNames returns the bound parameter names in stable order
func (m *Material) ParamNames() []string {
	names := make([]string, 0, len(m.params))
	for n := range m.params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
