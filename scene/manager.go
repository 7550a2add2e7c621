package scene

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownScene is returned when selecting a name never registered
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrSceneExists is returned when registering a name twice
	ErrSceneExists = errors.New("scene: scene already registered")
)

// Manager registers scenes by name and tracks the current one. It is
// an owned object handed to whoever composes scenes, not process
// state.
type Manager struct {
	mu      sync.RWMutex
	scenes  map[string]*Scene
	current *Scene
}

// NewManager creates an empty scene manager
func NewManager() *Manager {
	return &Manager{scenes: make(map[string]*Scene)}
}

// Register creates and records a scene under a unique name
func (m *Manager) Register(name string) (*Scene, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.scenes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrSceneExists, name)
	}
	s := newScene(name)
	m.scenes[name] = s
	return s, nil
}

// Get returns a registered scene by name
func (m *Manager) Get(name string) (*Scene, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s, nil
}

// SetCurrent selects the active scene by name
func (m *Manager) SetCurrent(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	m.current = s
	return nil
}

// Current returns the active scene, nil if none selected
func (m *Manager) Current() *Scene {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
