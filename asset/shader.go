package asset

import (
	"errors"
	"fmt"
)

// ShaderStage identifies one stage of a shader program
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

var (
	// ErrAlreadyLinked is returned when stages are loaded after Link
	ErrAlreadyLinked = errors.New("asset: shader already linked")

	// ErrMissingStage is returned when Link runs without both stages
	ErrMissingStage = errors.New("asset: shader requires vertex and fragment stages before linking")
)

// Shader is a multi-stage program. Stages are loaded from source paths
// through the Loader collaborator, then linked once.
type Shader struct {
	stages map[ShaderStage]string
	linked bool
}

// NewShader creates an empty, unlinked shader
func NewShader() *Shader {
	return &Shader{stages: make(map[ShaderStage]string)}
}

// LoadPart resolves a stage source through the loader and records it
func (sh *Shader) LoadPart(loader Loader, stage ShaderStage, path string) error {
	if sh.linked {
		return ErrAlreadyLinked
	}
	src, err := loader.LoadShaderSource(path)
	if err != nil {
		return fmt.Errorf("asset: load %s stage %q: %w", stage, path, err)
	}
	sh.stages[stage] = src
	return nil
}

// Link finalizes the program. Both vertex and fragment stages must be
// present; linking twice is a no-op.
func (sh *Shader) Link() error {
	if sh.linked {
		return nil
	}
	if _, ok := sh.stages[StageVertex]; !ok {
		return ErrMissingStage
	}
	if _, ok := sh.stages[StageFragment]; !ok {
		return ErrMissingStage
	}
	sh.linked = true
	return nil
}

// Linked reports whether the program has been linked
func (sh *Shader) Linked() bool {
	return sh.linked
}
